package statuspage

import (
	"encoding/json"
	"time"

	"github.com/statuswatch/checker/internal/domain"
)

// Pointer fields distinguish "absent" from "zero value" so schema
// violations can be reported precisely.
type summaryDoc struct {
	Status *struct {
		Indicator   *string `json:"indicator"`
		Description *string `json:"description"`
	} `json:"status"`
	Incidents []struct {
		Name      *string `json:"name"`
		Status    *string `json:"status"`
		UpdatedAt *string `json:"updated_at"`
		Shortlink string  `json:"shortlink"`
	} `json:"incidents"`
}

// ParseSummary decodes a Statuspage-style summary.json document. The
// incidents array of these documents only lists unresolved incidents, so
// every entry is treated as active.
func ParseSummary(raw []byte) (*domain.Summary, error) {
	var doc summaryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &MalformedError{Reason: "invalid JSON", Err: err}
	}

	if doc.Status == nil {
		return nil, &MalformedError{Reason: "missing status object"}
	}
	if doc.Status.Indicator == nil {
		return nil, &MalformedError{Reason: "missing status.indicator"}
	}
	if doc.Status.Description == nil {
		return nil, &MalformedError{Reason: "missing status.description"}
	}

	summary := &domain.Summary{
		Indicator:   domain.ParseIndicator(*doc.Status.Indicator),
		Description: *doc.Status.Description,
		Active:      []domain.Incident{},
	}

	for _, inc := range doc.Incidents {
		switch {
		case inc.Name == nil:
			return nil, &MalformedError{Reason: "incident missing name"}
		case inc.Status == nil:
			return nil, &MalformedError{Reason: "incident missing status"}
		case inc.UpdatedAt == nil:
			return nil, &MalformedError{Reason: "incident missing updated_at"}
		}

		updated, err := time.Parse(time.RFC3339, *inc.UpdatedAt)
		if err != nil {
			return nil, &MalformedError{Reason: "incident updated_at is not RFC 3339", Err: err}
		}

		summary.Active = append(summary.Active, domain.Incident{
			Name:      *inc.Name,
			Status:    *inc.Status,
			UpdatedAt: updated,
			Link:      inc.Shortlink,
		})
	}

	return summary, nil
}
