package favorites

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/badekart/badekart-backend/internal/utils"
	"github.com/lib/pq"
)

func postAs(userID, body string) *http.Request {
	req := httptest.NewRequest("POST", "/toggle", strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(utils.WithUserID(req.Context(), userID))
	}
	return req
}

func TestToggleFavorite_Unauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	ToggleFavoriteHandler(rec, postAs("", `{"spot_id":"huk"}`))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestToggleFavorite_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing spot_id", `{"spot_name":"Huk"}`},
		{"blank spot_id", `{"spot_id":"   "}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ToggleFavoriteHandler(rec, postAs("user-1", tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505"}
	if !isUniqueViolation(dup) {
		t.Error("expected 23505 to be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert favorite: %w", dup)) {
		t.Error("expected wrapped 23505 to be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("23503 is not a unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Error("plain errors are not unique violations")
	}
}
