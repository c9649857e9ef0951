package song

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0:00"},
		{"seconds only", 7 * time.Second, "0:07"},
		{"minutes and seconds", 3*time.Minute + 5*time.Second, "3:05"},
		{"long track", 61*time.Minute + 59*time.Second, "61:59"},
		{"negative clamps", -time.Second, "0:00"},
		{"sub-second truncates", 1500 * time.Millisecond, "0:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.in); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecord_Snapshot(t *testing.T) {
	r := Record{
		ID:       42,
		AlbumID:  7,
		Title:    "Windowlicker",
		Artist:   "Aphex Twin",
		Album:    "Windowlicker EP",
		Length:   6*time.Minute + 7*time.Second,
		CoverURL: "https://example.com/cover.jpg",
	}

	s := r.Snapshot()

	if s.ID != 42 || s.AlbumID != 7 {
		t.Errorf("ids = (%d, %d), want (42, 7)", s.ID, s.AlbumID)
	}
	if s.Name != r.Title || s.Singer != r.Artist || s.Album != r.Album {
		t.Errorf("display fields not copied verbatim: %+v", s)
	}
	if s.Duration != "6:07" {
		t.Errorf("Duration = %q, want 6:07", s.Duration)
	}
	if s.CoverURL != r.CoverURL {
		t.Errorf("CoverURL = %q, want %q", s.CoverURL, r.CoverURL)
	}
}

func TestSnapshot_AlbumRef(t *testing.T) {
	s := Snapshot{ID: 1, AlbumID: 9, Album: "Selected Ambient Works", CoverURL: "cover"}

	ref := s.AlbumRef()

	want := AlbumRef{ID: 9, Name: "Selected Ambient Works", CoverURL: "cover"}
	if ref != want {
		t.Errorf("AlbumRef() = %+v, want %+v", ref, want)
	}
}
