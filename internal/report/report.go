// Package report renders an incident summary for terminal or
// machine-readable output.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/statuswatch/checker/internal/domain"
)

var titleCaser = cases.Title(language.English)

// Text renders a summary as plain text for terminal display.
func Text(s *domain.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s status\n\n", s.Service)

	if s.Indicator != domain.IndicatorUnknown {
		line := titleCaser.String(string(s.Indicator))
		if s.Description != "" {
			line += " - " + s.Description
		}
		fmt.Fprintf(&b, "Indicator: %s\n\n", line)
	}

	if !s.HasActive() {
		b.WriteString("No active incidents.")
		if s.LastIncident != nil {
			fmt.Fprintf(&b, " Last incident: %s (%s).",
				s.LastIncident.UTC().Format("2006-01-02 15:04 UTC"),
				humanize.Time(*s.LastIncident))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("ACTIVE INCIDENTS\n\n")
		for _, inc := range s.Active {
			fmt.Fprintf(&b, ">>> [%s] %s", inc.Status, inc.Name)
			if !inc.UpdatedAt.IsZero() {
				fmt.Fprintf(&b, " (updated %s)", humanize.Time(inc.UpdatedAt))
			}
			b.WriteString("\n")
			if inc.Link != "" {
				fmt.Fprintf(&b, "    %s\n", inc.Link)
			}
		}
	}

	if len(s.History) > 0 {
		b.WriteString("\nRecent history:\n")
		for _, inc := range s.History {
			fmt.Fprintf(&b, "- [%s] %s\n", inc.Status, inc.Name)
			if inc.Link != "" {
				fmt.Fprintf(&b, "  %s\n", inc.Link)
			}
		}
	}

	return b.String()
}

// JSON renders a summary for machine consumption.
func JSON(s *domain.Summary) (string, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}
	return string(out), nil
}
