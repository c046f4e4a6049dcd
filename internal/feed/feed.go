// Package feed parses Atom and RSS incident-history feeds published by
// status pages that do not expose a JSON summary endpoint.
package feed

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MaxEntries caps how many feed entries are read, to bound work on a
// misbehaving feed.
const MaxEntries = 100

// ParseError indicates a feed that could not be decoded.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse feed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse feed: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Item is one feed entry describing an incident and its latest update.
type Item struct {
	Title  string
	Link   string
	Status string

	// Published is zero when the entry carries no parseable timestamp.
	Published time.Time
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Links     []atomLink `xml:"link"`
	Published string     `xml:"published"`
	Content   string     `xml:"content"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

type rssFeed struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// Incident updates embed the current status as the first
// <strong>Status</strong> marker in the entry body.
var statusMarker = regexp.MustCompile(`<strong>(\w+)</strong>`)

func extractStatus(content string) string {
	if m := statusMarker.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return "Unknown"
}

// ParseAtom decodes an Atom incident feed, newest entry first.
func ParseAtom(raw []byte) ([]Item, error) {
	var f atomFeed
	if err := xml.Unmarshal(raw, &f); err != nil {
		return nil, &ParseError{Reason: "invalid Atom XML", Err: err}
	}

	items := make([]Item, 0, len(f.Entries))
	for _, entry := range f.Entries {
		if len(items) >= MaxEntries {
			break
		}

		var link string
		for _, l := range entry.Links {
			if l.Rel == "alternate" || l.Rel == "" {
				link = l.Href
				break
			}
		}

		items = append(items, Item{
			Title:     strings.TrimSpace(entry.Title),
			Link:      link,
			Status:    extractStatus(entry.Content),
			Published: ParseTimestamp(entry.Published),
		})
	}

	return items, nil
}

// ParseRSS decodes an RSS incident feed, newest item first.
func ParseRSS(raw []byte) ([]Item, error) {
	var f rssFeed
	if err := xml.Unmarshal(raw, &f); err != nil {
		return nil, &ParseError{Reason: "invalid RSS XML", Err: err}
	}

	items := make([]Item, 0, len(f.Items))
	for _, item := range f.Items {
		if len(items) >= MaxEntries {
			break
		}

		items = append(items, Item{
			Title:     strings.TrimSpace(item.Title),
			Link:      strings.TrimSpace(item.Link),
			Status:    extractStatus(item.Description),
			Published: ParseTimestamp(item.PubDate),
		})
	}

	return items, nil
}

// ParseTimestamp reads a feed timestamp in either ISO 8601 (Atom) or
// RFC 822 (RSS) form. Returns the zero time when it cannot be parsed.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339, time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
