package cli

import (
	"testing"

	"github.com/nmorais/ritmo/internal/tracker"
)

func TestParseDay(t *testing.T) {
	if day, err := parseDay("2024-01-15"); err != nil || day != "2024-01-15" {
		t.Errorf("parseDay(2024-01-15) = %q, %v", day, err)
	}
	if day, err := parseDay("today"); err != nil || day != tracker.Today() {
		t.Errorf("parseDay(today) = %q, %v", day, err)
	}
	if day, err := parseDay(""); err != nil || day != tracker.Today() {
		t.Errorf("parseDay(empty) = %q, %v", day, err)
	}
	if day, err := parseDay("yesterday"); err != nil || day != tracker.Yesterday() {
		t.Errorf("parseDay(yesterday) = %q, %v", day, err)
	}

	for _, bad := range []string{"01/15/2024", "2024-13-01", "tomorrow", "2024-1-5"} {
		if _, err := parseDay(bad); err == nil {
			t.Errorf("parseDay(%q) should fail", bad)
		}
	}
}

func TestParseTrackingType(t *testing.T) {
	if _, err := parseTrackingType("boolean"); err != nil {
		t.Errorf("boolean should parse: %v", err)
	}
	if _, err := parseTrackingType("numerical"); err != nil {
		t.Errorf("numerical should parse: %v", err)
	}
	if _, err := parseTrackingType("weekly"); err == nil {
		t.Error("unknown tracking type should fail")
	}
}

func TestParseSortField(t *testing.T) {
	for _, ok := range []string{"name", "start-date", "end-date"} {
		if _, err := parseSortField(ok); err != nil {
			t.Errorf("%s should parse: %v", ok, err)
		}
	}
	if _, err := parseSortField("id"); err == nil {
		t.Error("unknown sort field should fail")
	}
}
