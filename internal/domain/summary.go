package domain

import "time"

// Indicator is the coarse severity reported by a status page.
type Indicator string

// Indicators in increasing order of severity. IndicatorUnknown covers
// providers that do not expose an indicator and unrecognized values.
const (
	IndicatorNone     Indicator = "none"
	IndicatorMinor    Indicator = "minor"
	IndicatorMajor    Indicator = "major"
	IndicatorCritical Indicator = "critical"
	IndicatorUnknown  Indicator = "unknown"
)

// IsValid checks if the indicator is one of the known values.
func (i Indicator) IsValid() bool {
	switch i {
	case IndicatorNone, IndicatorMinor, IndicatorMajor, IndicatorCritical, IndicatorUnknown:
		return true
	}
	return false
}

// ParseIndicator maps a raw indicator string to a known Indicator.
// Unrecognized values map to IndicatorUnknown.
func ParseIndicator(raw string) Indicator {
	i := Indicator(raw)
	if i.IsValid() {
		return i
	}
	return IndicatorUnknown
}

// Incident is a single disruption tracked by a status page.
type Incident struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
	Link      string    `json:"link,omitempty"`
}

// Summary is the normalized result of one status-page check.
type Summary struct {
	Service     string     `json:"service"`
	Indicator   Indicator  `json:"indicator"`
	Description string     `json:"description,omitempty"`
	Active      []Incident `json:"active_incidents"`
	History     []Incident `json:"recent_history,omitempty"`

	// LastIncident is when the most recent historical incident was
	// published. Nil when the source does not carry history.
	LastIncident *time.Time `json:"last_incident_at,omitempty"`
}

// HasActive returns true if there is at least one unresolved incident.
func (s *Summary) HasActive() bool {
	return len(s.Active) > 0
}
