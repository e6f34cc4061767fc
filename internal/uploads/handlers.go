package uploads

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/badekart/badekart-backend/internal/utils"
)

const (
	maxSpotImageSize    = 10 << 20 // 10 MB
	maxProfileImageSize = 5 << 20  // 5 MB
)

var store Store

func Init() {
	s, err := NewDiskStore()
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}
	store = s
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// UploadHandler accepts a multipart image under the "file" field. Spot
// images are capped at 10MB, profile images (kind=profile) at 5MB.
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	maxSize := int64(maxSpotImageSize)
	if r.URL.Query().Get("kind") == "profile" {
		maxSize = maxProfileImageSize
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "File too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	if header.Size > maxSize {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeError(w, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("spot-%s-%d%s", userID, time.Now().UnixMilli(), ext)

	url, err := store.Save(name, file)
	if err != nil {
		log.Printf("Failed to store upload: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
