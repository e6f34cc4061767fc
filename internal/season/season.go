// Package season provides Oslo-specific sunset times, golden hour windows
// and seasonal bathing tips. Sunset times are month-level approximations
// rather than astronomical calculations, which is plenty for deciding when
// to head to the water.
package season

import (
	"fmt"
	"time"
)

// sunsetByMonth holds approximate Oslo sunset times in minutes after
// midnight. Months outside the bathing season fall back to 18:00.
var sunsetByMonth = map[time.Month]int{
	time.May:       21*60 + 30,
	time.June:      22*60 + 45,
	time.July:      22*60 + 30,
	time.August:    21*60 + 15,
	time.September: 19*60 + 30,
}

const defaultSunsetMinutes = 18 * 60

// GoldenHour is the hour leading up to sunset.
type GoldenHour struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Tip is a seasonal suggestion shown on the landing page.
type Tip struct {
	Tip  string `json:"tip"`
	Type string `json:"type"`
}

func sunsetMinutes(month time.Month) int {
	if m, ok := sunsetByMonth[month]; ok {
		return m
	}
	return defaultSunsetMinutes
}

// formatClock renders minutes after midnight as a 12-hour time like
// "9:45 PM".
func formatClock(minutes int) string {
	h, m := minutes/60, minutes%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

// GoldenHourFor returns the golden hour window for the given date.
func GoldenHourFor(t time.Time) GoldenHour {
	sunset := sunsetMinutes(t.Month())
	return GoldenHour{
		Start: formatClock(sunset - 60),
		End:   formatClock(sunset),
	}
}

// IsMidsummer reports whether the date falls in the midsummer window
// around Sankthans, June 15 through June 30.
func IsMidsummer(t time.Time) bool {
	return t.Month() == time.June && t.Day() >= 15
}

var tips = []Tip{
	{Tip: "Water is warmest in late July and early August", Type: "water"},
	{Tip: "Midsummer nights barely get dark, perfect for late swims", Type: "season"},
	{Tip: "Golden hour at the fjord is the best photo light of the day", Type: "photo"},
	{Tip: "Weekday mornings are the quietest time at popular spots", Type: "crowd"},
	{Tip: "Bring a wool sweater, fjord evenings cool off fast", Type: "comfort"},
	{Tip: "The island spots are a short ferry ride from Aker Brygge", Type: "transport"},
	{Tip: "September water holds summer warmth longer than the air does", Type: "water"},
	{Tip: "Check the water quality flag before diving at city beaches", Type: "safety"},
	{Tip: "Sunset views face west, pick the fjord side of the peninsula", Type: "photo"},
	{Tip: "Early season swims are brisk, a quick dip still counts", Type: "season"},
}

// TipFor picks the tip of the day, rotating by day of year.
func TipFor(t time.Time) Tip {
	return tips[t.YearDay()%len(tips)]
}
