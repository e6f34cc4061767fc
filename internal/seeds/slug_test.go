package seeds

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Huk Beach", "huk-beach"},
		{"Sørenga Seawater Pool", "sorenga-seawater-pool"},
		{"Hovedøya Island", "hovedoya-island"},
		{"Ingierstrand Bad", "ingierstrand-bad"},
		{"Paradisbukta", "paradisbukta"},
		{"Bestemorstranda på Malmøya", "bestemorstranda-pa-malmoya"},
		{"  Café  Strand  ", "cafe-strand"},
		{"Østre Bæverøya", "ostre-baeveroya"},
	}

	for _, tc := range tests {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
