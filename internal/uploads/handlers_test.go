package uploads

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/badekart/badekart-backend/internal/utils"
)

func multipartRequest(t *testing.T, userID, field, filename, contentType string, payload []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write(payload)
	mw.Close()

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if userID != "" {
		req = req.WithContext(utils.WithUserID(req.Context(), userID))
	}
	return req
}

func setTestStore(t *testing.T) {
	t.Helper()
	store = &DiskStore{Dir: t.TempDir()}
}

func TestUpload_Unauthorized(t *testing.T) {
	setTestStore(t)
	rec := httptest.NewRecorder()
	UploadHandler(rec, multipartRequest(t, "", "file", "a.jpg", "image/jpeg", []byte("x")))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestUpload_RejectsNonImage(t *testing.T) {
	setTestStore(t)
	rec := httptest.NewRecorder()
	UploadHandler(rec, multipartRequest(t, "user-1", "file", "notes.txt", "text/plain", []byte("hello")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected structured error message")
	}
}

func TestUpload_MissingFileField(t *testing.T) {
	setTestStore(t)
	rec := httptest.NewRecorder()
	UploadHandler(rec, multipartRequest(t, "user-1", "wrong", "a.jpg", "image/jpeg", []byte("x")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUpload_Success(t *testing.T) {
	setTestStore(t)
	rec := httptest.NewRecorder()
	UploadHandler(rec, multipartRequest(t, "user-1", "file", "beach.png", "image/png", []byte("pngdata")))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	url := body["url"]
	if !strings.HasPrefix(url, "/uploads/spot-user-1-") || !strings.HasSuffix(url, ".png") {
		t.Errorf("unexpected url %q", url)
	}
}

func TestUpload_ProfileSizeLimit(t *testing.T) {
	setTestStore(t)

	// 6MB payload passes the 10MB spot limit but exceeds the 5MB
	// profile limit.
	payload := bytes.Repeat([]byte("a"), 6<<20)

	rec := httptest.NewRecorder()
	req := multipartRequest(t, "user-1", "file", "me.jpg", "image/jpeg", payload)
	UploadHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("spot upload of 6MB should pass, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = multipartRequest(t, "user-1", "file", "me.jpg", "image/jpeg", payload)
	req.URL.RawQuery = "kind=profile"
	UploadHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("profile upload of 6MB should be rejected, got %d", rec.Code)
	}
}

func TestDiskStore_Save(t *testing.T) {
	s := &DiskStore{Dir: t.TempDir()}
	url, err := s.Save("spot-u-1.jpg", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if url != "/uploads/spot-u-1.jpg" {
		t.Errorf("url = %q", url)
	}
}
