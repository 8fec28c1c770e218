package entities

import (
	"testing"
	"time"
)

func TestParsePortalDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"plain date", "2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"iso timestamp", "2025-06-15T10:30:00Z", time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), true},
		{"iso no zone", "2025-06-15T10:30:00", time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), true},
		{"slash month first", "03/04/2025", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{"slash day first when first exceeds 12", "25/04/2025", time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC), true},
		{"slash both invalid", "45/20/2025", time.Time{}, false},
		{"slash too few parts", "04/2025", time.Time{}, false},
		{"slash non-numeric", "aa/bb/cccc", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"whitespace only", "   ", time.Time{}, false},
		{"garbage", "not-a-date", time.Time{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParsePortalDate(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParsePortalDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("ParsePortalDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestBeforeDay(t *testing.T) {
	ref := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("previous day", func(t *testing.T) {
		if !BeforeDay(time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), ref) {
			t.Fatal("expected 14th before 15th")
		}
	})

	t.Run("same day later hour is not before", func(t *testing.T) {
		if BeforeDay(time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC), ref) {
			t.Fatal("same day must not count as before")
		}
	})

	t.Run("same day earlier hour is not before", func(t *testing.T) {
		if BeforeDay(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), ref) {
			t.Fatal("same day must not count as before")
		}
	})

	t.Run("next day", func(t *testing.T) {
		if BeforeDay(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), ref) {
			t.Fatal("16th is not before 15th")
		}
	})
}
