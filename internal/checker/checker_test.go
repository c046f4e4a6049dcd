package checker

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statuswatch/checker/internal/domain"
	"github.com/statuswatch/checker/internal/registry"
	"github.com/statuswatch/checker/internal/statuspage"
)

// stubTransport records outbound requests and serves canned responses,
// keyed by URL. Unknown URLs get a 404.
type stubTransport struct {
	responses map[string]string
	requests  []*http.Request
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req)

	url := req.URL.String()
	body, ok := s.responses[url]
	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

const githubSummaryURL = "https://www.githubstatus.com/api/v2/summary.json"
const claudeSummaryURL = "https://status.anthropic.com/api/v2/summary.json"

func newTestChecker(t *testing.T, stub *stubTransport) *Checker {
	t.Helper()

	reg, err := registry.Load("")
	require.NoError(t, err)

	client := statuspage.NewClientWithTransport(statuspage.Config{}, stub)
	return New(reg, client)
}

func TestCheck_GhHitsGitHubEndpoint(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		githubSummaryURL: `{"status": {"indicator": "none", "description": "All Systems Operational"}, "incidents": []}`,
	}}
	chk := newTestChecker(t, stub)

	summary, err := chk.Check(context.Background(), "gh")
	require.NoError(t, err)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, githubSummaryURL, stub.requests[0].URL.String())
	assert.Equal(t, http.MethodGet, stub.requests[0].Method)

	assert.Equal(t, "GitHub", summary.Service)
	assert.Equal(t, domain.IndicatorNone, summary.Indicator)
	assert.False(t, summary.HasActive())
}

func TestCheck_EmptyTokenChecksDefault(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		claudeSummaryURL: `{"status": {"indicator": "none", "description": "All Systems Operational"}, "incidents": []}`,
	}}
	chk := newTestChecker(t, stub)

	summary, err := chk.Check(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, claudeSummaryURL, stub.requests[0].URL.String())
	assert.Equal(t, "Claude", summary.Service)
}

func TestCheck_ActiveIncident(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		githubSummaryURL: `{
		  "status": {"indicator": "minor", "description": "Minor Service Outage"},
		  "incidents": [{"name": "API Errors", "status": "investigating", "updated_at": "2026-08-30T10:15:00Z"}]
		}`,
	}}
	chk := newTestChecker(t, stub)

	summary, err := chk.Check(context.Background(), "GitHub")
	require.NoError(t, err)

	require.True(t, summary.HasActive())
	assert.Equal(t, "API Errors", summary.Active[0].Name)
	assert.Equal(t, "investigating", summary.Active[0].Status)
}

func TestCheck_UnknownService(t *testing.T) {
	stub := &stubTransport{}
	chk := newTestChecker(t, stub)

	_, err := chk.Check(context.Background(), "not-a-service")
	require.Error(t, err)

	var unknownErr *registry.UnknownServiceError
	require.ErrorAs(t, err, &unknownErr)
	assert.Empty(t, stub.requests, "no request should be made for an unknown service")
}

func TestCheck_HTTPFailure(t *testing.T) {
	stub := &stubTransport{} // every URL answers 404
	chk := newTestChecker(t, stub)

	_, err := chk.Check(context.Background(), "gh")

	var netErr *statuspage.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusNotFound, netErr.Code)
}

func TestCheck_MalformedResponse(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		githubSummaryURL: `{"incidents": []}`,
	}}
	chk := newTestChecker(t, stub)

	_, err := chk.Check(context.Background(), "gh")

	var malformedErr *statuspage.MalformedError
	require.ErrorAs(t, err, &malformedErr)
}
