package cli

import (
	"fmt"
	"time"

	"github.com/nmorais/ritmo/internal/models"
	"github.com/nmorais/ritmo/internal/storage"
	"github.com/nmorais/ritmo/internal/tracker"
)

type Context struct {
	Store    storage.Store
	Registry *tracker.Registry
	Ledger   *tracker.Ledger
}

// parseDay resolves a date argument to a YYYY-MM-DD day. The keywords
// "today" and "yesterday" resolve in UTC.
func parseDay(s string) (string, error) {
	switch s {
	case "", "today":
		return tracker.Today(), nil
	case "yesterday":
		return tracker.Yesterday(), nil
	}
	if _, err := time.Parse(models.DayFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD, 'today' or 'yesterday'", s)
	}
	return s, nil
}

func parseTrackingType(s string) (models.TrackingType, error) {
	switch models.TrackingType(s) {
	case models.TrackingBoolean:
		return models.TrackingBoolean, nil
	case models.TrackingNumerical:
		return models.TrackingNumerical, nil
	default:
		return "", fmt.Errorf("invalid tracking type %q, use boolean or numerical", s)
	}
}

func parseSortField(s string) (tracker.SortField, error) {
	switch tracker.SortField(s) {
	case tracker.SortByName, tracker.SortByStartDate, tracker.SortByEndDate:
		return tracker.SortField(s), nil
	default:
		return "", fmt.Errorf("invalid sort field %q, use name, start-date or end-date", s)
	}
}
