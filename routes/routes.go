package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/abpts/handlers"
	"p9e.in/abpts/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	// Uploaded document attachments
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	api := r.PathPrefix("/api").Subrouter()

	registerOpportunityRoutes(api)
	registerComplianceRoutes(api)
	registerDocumentRoutes(api)
	registerActivityRoutes(api)
	registerReportRoutes(api)

	return r
}

func registerOpportunityRoutes(api *mux.Router) {
	api.HandleFunc("/opportunities", handlers.GetAllOpportunities).Methods("GET")
	api.HandleFunc("/opportunities", handlers.CreateOpportunity).Methods("POST")
	api.HandleFunc("/opportunities/{id}", handlers.GetOpportunity).Methods("GET")
	api.HandleFunc("/opportunities/{id}", handlers.UpdateOpportunity).Methods("PUT")
	api.HandleFunc("/opportunities/{id}", handlers.DeleteOpportunity).Methods("DELETE")
}

func registerComplianceRoutes(api *mux.Router) {
	api.HandleFunc("/compliance", handlers.CreateComplianceItem).Methods("POST")
	// Fixed path must be registered before the parameterized one
	api.HandleFunc("/compliance/overview", handlers.GetComplianceOverview).Methods("GET")
	api.HandleFunc("/compliance/{opportunity_id}", handlers.GetComplianceItems).Methods("GET")
	api.HandleFunc("/compliance/{id}", handlers.UpdateComplianceItem).Methods("PUT")
	api.HandleFunc("/compliance/{id}", handlers.DeleteComplianceItem).Methods("DELETE")
}

func registerDocumentRoutes(api *mux.Router) {
	api.HandleFunc("/documents/upload", handlers.UploadDocumentFile).Methods("POST")
	api.HandleFunc("/documents", handlers.CreateDocument).Methods("POST")
	api.HandleFunc("/documents/{opportunity_id}", handlers.GetDocuments).Methods("GET")
	api.HandleFunc("/documents/{id}", handlers.DeleteDocument).Methods("DELETE")
}

func registerActivityRoutes(api *mux.Router) {
	api.HandleFunc("/activities", handlers.CreateActivity).Methods("POST")
	api.HandleFunc("/activities/{opportunity_id}", handlers.GetActivities).Methods("GET")
}

func registerReportRoutes(api *mux.Router) {
	api.HandleFunc("/statistics", handlers.GetStatistics).Methods("GET")
	api.HandleFunc("/reports/export/excel", handlers.ExportPortfolioToExcel).Methods("GET")
	api.HandleFunc("/reports/export/pdf", handlers.GeneratePortfolioReport).Methods("GET")
}
