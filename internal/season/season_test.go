package season

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 12, 0, 0, 0, time.UTC)
}

func TestGoldenHourFor(t *testing.T) {
	tests := []struct {
		month time.Month
		start string
		end   string
	}{
		{time.May, "8:30 PM", "9:30 PM"},
		{time.June, "9:45 PM", "10:45 PM"},
		{time.July, "9:30 PM", "10:30 PM"},
		{time.August, "8:15 PM", "9:15 PM"},
		{time.September, "6:30 PM", "7:30 PM"},
		// Off-season months fall back to an 18:00 sunset.
		{time.January, "5:00 PM", "6:00 PM"},
		{time.November, "5:00 PM", "6:00 PM"},
	}

	for _, tc := range tests {
		gh := GoldenHourFor(date(tc.month, 10))
		if gh.Start != tc.start || gh.End != tc.end {
			t.Errorf("%s: got %s-%s, want %s-%s", tc.month, gh.Start, gh.End, tc.start, tc.end)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{9 * 60, "9:00 AM"},
		{12 * 60, "12:00 PM"},
		{21*60 + 45, "9:45 PM"},
		{23*60 + 5, "11:05 PM"},
	}
	for _, tc := range tests {
		if got := formatClock(tc.minutes); got != tc.want {
			t.Errorf("formatClock(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestIsMidsummer(t *testing.T) {
	if IsMidsummer(date(time.June, 14)) {
		t.Error("June 14 is before the midsummer window")
	}
	if !IsMidsummer(date(time.June, 15)) {
		t.Error("June 15 starts the midsummer window")
	}
	if !IsMidsummer(date(time.June, 30)) {
		t.Error("June 30 is in the midsummer window")
	}
	if IsMidsummer(date(time.July, 1)) {
		t.Error("July is not midsummer")
	}
}

func TestTipFor_StablePerDay(t *testing.T) {
	day := date(time.July, 14)
	if TipFor(day) != TipFor(day.Add(3*time.Hour)) {
		t.Error("tip should not change within a day")
	}
	if TipFor(day).Tip == "" {
		t.Error("tip text must be non-empty")
	}
}

func TestGetSeasonHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	GetSeasonHandler(rec, httptest.NewRequest("GET", "/api/season", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body seasonResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.GoldenHour.Start == "" || body.GoldenHour.End == "" {
		t.Error("golden hour window missing")
	}
	if body.Tip.Tip == "" || body.Tip.Type == "" {
		t.Error("tip missing")
	}
}
