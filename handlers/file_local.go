package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	uploadDir = "./uploads" // Local directory for document attachments
)

// UploadDocumentFile stores a document attachment on the local
// filesystem and returns the URL to reference from the document record.
// The attachment is uploaded first; the client then creates the document
// row with the returned file_url.
func UploadDocumentFile(w http.ResponseWriter, r *http.Request) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		http.Error(w, "failed to create upload directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Parse the multipart form (max 50MB)
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Timestamp prefix keeps re-uploads of the same filename distinct on
	// disk; version labels are handled at the document row, not here.
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("%s-%s", timestamp, header.Filename)
	path := filepath.Join(uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		http.Error(w, "failed to create file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "failed to save file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]string{
		"file_url":  fmt.Sprintf("/uploads/%s", filename),
		"file_name": header.Filename,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
