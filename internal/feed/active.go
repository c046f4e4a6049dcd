package feed

import (
	"strings"
	"time"

	"github.com/statuswatch/checker/internal/domain"
)

// ActiveWindow is how recently an entry must have been updated to count
// as a live incident rather than history.
const ActiveWindow = 4 * time.Hour

// historyLimit caps the recent-history section of a summary.
const historyLimit = 5

// Phrases that mark an incident as over, across status-page providers.
var resolvedPatterns = []string{
	"resolved",
	"fixed",
	"closed",
	"completed",
	"recovered",
	"restored",
	"back to normal",
	"fully operational",
}

// IsResolved reports whether the item's status suggests the incident is
// over.
func IsResolved(item Item) bool {
	status := strings.ToLower(item.Status)
	for _, pattern := range resolvedPatterns {
		if strings.Contains(status, pattern) {
			return true
		}
	}
	return false
}

// IsActive reports whether the item looks like a live incident: updated
// within the window and not carrying a resolved status.
func IsActive(item Item, now time.Time) bool {
	if item.Published.IsZero() {
		return false
	}
	if now.Sub(item.Published) >= ActiveWindow {
		return false
	}
	return !IsResolved(item)
}

// Summarize folds feed items into a summary. Feeds carry no severity
// indicator, so the indicator is none when quiet and unknown when an
// incident is live.
func Summarize(items []Item, now time.Time) *domain.Summary {
	summary := &domain.Summary{
		Indicator: domain.IndicatorNone,
		Active:    []domain.Incident{},
	}

	for _, item := range items {
		inc := domain.Incident{
			Name:      item.Title,
			Status:    item.Status,
			UpdatedAt: item.Published,
			Link:      item.Link,
		}

		if IsActive(item, now) {
			summary.Active = append(summary.Active, inc)
		}
		if len(summary.History) < historyLimit {
			summary.History = append(summary.History, inc)
		}
	}

	if len(items) > 0 && !items[0].Published.IsZero() {
		published := items[0].Published
		summary.LastIncident = &published
	}

	if summary.HasActive() {
		summary.Indicator = domain.IndicatorUnknown
	}

	return summary
}
