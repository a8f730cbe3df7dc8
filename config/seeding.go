package config

import (
	"log"
	"time"

	"p9e.in/abpts/models"
)

// SeedSampleData loads the demo portfolio used for local development and
// product walkthroughs. It is a no-op when any opportunities already
// exist, so it is safe to call on every startup.
func SeedSampleData() error {
	var count int64
	if err := DB.Model(&models.Opportunity{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seeding skipped: opportunities already present")
		return nil
	}

	now := time.Now().UTC()
	opportunities := []models.Opportunity{
		{
			Client:               "GlobalTech Solutions",
			ProjectType:          "Cloud Migration Services",
			RFPReleaseDate:       "2025-01-05",
			SubmissionDeadline:   models.JSONTime(now.Add(10 * 24 * time.Hour)),
			ProposalOwner:        "Sarah Johnson",
			Status:               models.StatusDrafting,
			CompliancePercentage: 65,
			PriorityLevel:        models.PriorityHigh,
			PortalLink:           "https://globaltechportal.com/rfp/12345",
			RiskFlags:            models.RiskFlags{"Tight Timeline", "Complex Requirements"},
			SubmissionFormat:     models.FormatPortal,
			Budget:               "$2.5M - $3.5M",
			Industry:             "Technology",
		},
		{
			Client:               "Healthcare Alliance",
			ProjectType:          "EHR System Implementation",
			RFPReleaseDate:       "2025-01-10",
			SubmissionDeadline:   models.JSONTime(now.Add(2 * 24 * time.Hour)),
			ProposalOwner:        "Michael Chen",
			Status:               models.StatusReview,
			CompliancePercentage: 85,
			PriorityLevel:        models.PriorityHigh,
			PortalLink:           "https://healthportal.gov/opportunities/789",
			RiskFlags:            models.RiskFlags{"Urgent Deadline"},
			SubmissionFormat:     models.FormatHybrid,
			Budget:               "$5M - $7M",
			Industry:             "Healthcare",
		},
		{
			Client:               "Financial Services Corp",
			ProjectType:          "Cybersecurity Assessment",
			RFPReleaseDate:       "2024-12-20",
			SubmissionDeadline:   models.JSONTime(now.Add(5 * 24 * time.Hour)),
			ProposalOwner:        "David Martinez",
			Status:               models.StatusApproved,
			CompliancePercentage: 92,
			PriorityLevel:        models.PriorityHigh,
			RiskFlags:            models.RiskFlags{},
			SubmissionFormat:     models.FormatEmail,
			Budget:               "$1.2M - $1.8M",
			Industry:             "Finance",
		},
		{
			Client:               "State Department of Education",
			ProjectType:          "Learning Management System",
			RFPReleaseDate:       "2025-01-08",
			SubmissionDeadline:   models.JSONTime(now.Add(30 * time.Hour)),
			ProposalOwner:        "Emily Wong",
			Status:               models.StatusDrafting,
			CompliancePercentage: 70,
			PriorityLevel:        models.PriorityHigh,
			PortalLink:           "https://education.state.gov/bids/2025-LMS",
			RiskFlags:            models.RiskFlags{"Urgent Deadline", "Government Contract"},
			SubmissionFormat:     models.FormatPortal,
			Budget:               "$3M - $4M",
			Industry:             "Government",
		},
		{
			Client:               "Retail Innovations Inc",
			ProjectType:          "Supply Chain Optimization",
			RFPReleaseDate:       "2024-12-15",
			SubmissionDeadline:   models.JSONTime(now.Add(20 * 24 * time.Hour)),
			ProposalOwner:        "James Wilson",
			Status:               models.StatusDrafting,
			CompliancePercentage: 55,
			PriorityLevel:        models.PriorityMedium,
			PortalLink:           "https://retailinnovations.com/procurement/sc-opt",
			RiskFlags:            models.RiskFlags{},
			SubmissionFormat:     models.FormatPortal,
			Budget:               "$800K - $1.2M",
			Industry:             "Retail",
		},
		{
			Client:               "Energy Solutions Ltd",
			ProjectType:          "Smart Grid Implementation",
			RFPReleaseDate:       "2024-11-25",
			SubmissionDeadline:   models.JSONTime(now.Add(-5 * 24 * time.Hour)),
			ProposalOwner:        "Lisa Anderson",
			Status:               models.StatusSubmitted,
			CompliancePercentage: 95,
			PriorityLevel:        models.PriorityHigh,
			RiskFlags:            models.RiskFlags{},
			SubmissionFormat:     models.FormatEmail,
			Budget:               "$10M - $15M",
			Industry:             "Energy",
		},
		{
			Client:               "Manufacturing Hub",
			ProjectType:          "IoT Integration",
			RFPReleaseDate:       "2024-11-10",
			SubmissionDeadline:   models.JSONTime(now.Add(-15 * 24 * time.Hour)),
			ProposalOwner:        "Robert Taylor",
			Status:               models.StatusWon,
			CompliancePercentage: 98,
			PriorityLevel:        models.PriorityHigh,
			PortalLink:           "https://mfghub.com/rfp/iot2024",
			RiskFlags:            models.RiskFlags{},
			SubmissionFormat:     models.FormatPortal,
			Budget:               "$4M - $6M",
			Industry:             "Manufacturing",
		},
		{
			Client:               "Transportation Authority",
			ProjectType:          "Fleet Management System",
			RFPReleaseDate:       "2024-10-20",
			SubmissionDeadline:   models.JSONTime(now.Add(-20 * 24 * time.Hour)),
			ProposalOwner:        "Amanda Brooks",
			Status:               models.StatusLost,
			CompliancePercentage: 78,
			PriorityLevel:        models.PriorityMedium,
			RiskFlags:            models.RiskFlags{"Price Sensitivity"},
			SubmissionFormat:     models.FormatHybrid,
			Budget:               "$2M - $3M",
			Industry:             "Transportation",
		},
		{
			Client:               "Telecom Global",
			ProjectType:          "5G Network Expansion",
			RFPReleaseDate:       "2025-01-12",
			SubmissionDeadline:   models.JSONTime(now.Add(15 * 24 * time.Hour)),
			ProposalOwner:        "Kevin Park",
			Status:               models.StatusReview,
			CompliancePercentage: 88,
			PriorityLevel:        models.PriorityHigh,
			PortalLink:           "https://telecomglobal.net/bids/5g-expansion",
			RiskFlags:            models.RiskFlags{},
			SubmissionFormat:     models.FormatPortal,
			Budget:               "$20M - $25M",
			Industry:             "Telecommunications",
		},
		{
			Client:               "City Planning Department",
			ProjectType:          "Smart City Infrastructure",
			RFPReleaseDate:       "2025-01-01",
			SubmissionDeadline:   models.JSONTime(now.Add(7 * 24 * time.Hour)),
			ProposalOwner:        "Michelle Lee",
			Status:               models.StatusDrafting,
			CompliancePercentage: 60,
			PriorityLevel:        models.PriorityMedium,
			PortalLink:           "https://cityplanning.gov/smartcity-rfp",
			RiskFlags:            models.RiskFlags{"Multiple Stakeholders"},
			SubmissionFormat:     models.FormatPortal,
			Budget:               "$8M - $12M",
			Industry:             "Government",
		},
	}

	if err := DB.Create(&opportunities).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d sample opportunities", len(opportunities))
	return nil
}
