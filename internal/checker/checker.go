// Package checker orchestrates the resolve, fetch, parse pipeline of a
// single status check.
package checker

import (
	"context"
	"time"

	"github.com/statuswatch/checker/internal/domain"
	"github.com/statuswatch/checker/internal/feed"
	"github.com/statuswatch/checker/internal/pkg/ctxlog"
	"github.com/statuswatch/checker/internal/registry"
	"github.com/statuswatch/checker/internal/statuspage"
)

// Checker resolves a service token and reports its current status.
type Checker struct {
	registry *registry.Registry
	client   *statuspage.Client
}

// New creates a new checker.
func New(reg *registry.Registry, client *statuspage.Client) *Checker {
	return &Checker{
		registry: reg,
		client:   client,
	}
}

// Check runs the full pipeline for one service token. An empty token
// checks the default service.
func (c *Checker) Check(ctx context.Context, token string) (*domain.Summary, error) {
	svc, err := c.registry.Resolve(token)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("checking service", "service", svc.ID, "source", svc.Source)

	raw, err := c.client.Fetch(ctx, svc.URL)
	if err != nil {
		return nil, err
	}

	var summary *domain.Summary
	switch svc.Source {
	case registry.SourceAtom:
		items, err := feed.ParseAtom(raw)
		if err != nil {
			return nil, err
		}
		summary = feed.Summarize(items, time.Now())
	case registry.SourceRSS:
		items, err := feed.ParseRSS(raw)
		if err != nil {
			return nil, err
		}
		summary = feed.Summarize(items, time.Now())
	default:
		summary, err = statuspage.ParseSummary(raw)
		if err != nil {
			return nil, err
		}
	}

	summary.Service = svc.Name

	logger.Debug("check complete",
		"service", svc.ID,
		"indicator", summary.Indicator,
		"active_incidents", len(summary.Active),
	)

	return summary, nil
}

// Resolve exposes token resolution without performing a check.
func (c *Checker) Resolve(token string) (registry.Service, error) {
	return c.registry.Resolve(token)
}
