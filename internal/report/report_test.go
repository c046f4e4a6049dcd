package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statuswatch/checker/internal/domain"
)

func TestText_NoActiveIncidents(t *testing.T) {
	summary := &domain.Summary{
		Service:     "GitHub",
		Indicator:   domain.IndicatorNone,
		Description: "All Systems Operational",
		Active:      []domain.Incident{},
	}

	out := Text(summary)

	assert.Contains(t, out, "GitHub")
	assert.Contains(t, out, "No active incidents")
	assert.Contains(t, out, "All Systems Operational")
	assert.NotContains(t, out, "ACTIVE INCIDENTS")
}

func TestText_NoActiveIncludesLastIncidentTime(t *testing.T) {
	last := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	summary := &domain.Summary{
		Service:      "Claude",
		Indicator:    domain.IndicatorNone,
		Active:       []domain.Incident{},
		LastIncident: &last,
	}

	out := Text(summary)

	assert.Contains(t, out, "No active incidents")
	assert.Contains(t, out, "2026-08-28 09:30 UTC")
}

func TestText_ActiveIncident(t *testing.T) {
	summary := &domain.Summary{
		Service:     "GitHub",
		Indicator:   domain.IndicatorMinor,
		Description: "Minor Service Outage",
		Active: []domain.Incident{
			{
				Name:      "API Errors",
				Status:    "investigating",
				UpdatedAt: time.Now().Add(-10 * time.Minute),
				Link:      "https://stspg.io/abc123",
			},
		},
	}

	out := Text(summary)

	assert.Contains(t, out, "ACTIVE INCIDENTS")
	assert.Contains(t, out, "API Errors")
	assert.Contains(t, out, "investigating")
	assert.Contains(t, out, "https://stspg.io/abc123")
	assert.Contains(t, out, "Minor")
	assert.NotContains(t, out, "No active incidents")
}

func TestText_RecentHistory(t *testing.T) {
	summary := &domain.Summary{
		Service:   "Claude",
		Indicator: domain.IndicatorNone,
		Active:    []domain.Incident{},
		History: []domain.Incident{
			{Name: "Elevated errors", Status: "Resolved", Link: "https://status.anthropic.com/incidents/abc"},
		},
	}

	out := Text(summary)

	assert.Contains(t, out, "Recent history")
	assert.Contains(t, out, "Elevated errors")
	assert.Contains(t, out, "Resolved")
	assert.Contains(t, out, "https://status.anthropic.com/incidents/abc")
}

func TestText_UnknownIndicatorOmitsLine(t *testing.T) {
	summary := &domain.Summary{
		Service:   "Something",
		Indicator: domain.IndicatorUnknown,
		Active: []domain.Incident{
			{Name: "Outage", Status: "Investigating"},
		},
	}

	out := Text(summary)
	assert.NotContains(t, out, "Indicator:")
}

func TestJSON(t *testing.T) {
	summary := &domain.Summary{
		Service:   "GitHub",
		Indicator: domain.IndicatorMinor,
		Active: []domain.Incident{
			{Name: "API Errors", Status: "investigating", UpdatedAt: time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)},
		},
	}

	out, err := JSON(summary)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "GitHub", decoded["service"])
	assert.Equal(t, "minor", decoded["indicator"])

	active, ok := decoded["active_incidents"].([]any)
	require.True(t, ok)
	require.Len(t, active, 1)
}
