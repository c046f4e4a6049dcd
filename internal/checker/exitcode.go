package checker

import (
	"errors"

	"github.com/statuswatch/checker/internal/feed"
	"github.com/statuswatch/checker/internal/registry"
	"github.com/statuswatch/checker/internal/statuspage"
)

// Exit codes reported to the invoking shell or agent.
const (
	ExitOK             = 0
	ExitUnknownService = 1
	ExitNetwork        = 2
	ExitMalformed      = 3
)

// ExitCode maps an error from Check to its process exit code. Errors
// outside the three contract kinds (such as config problems) map to the
// generic failure code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		unknownErr   *registry.UnknownServiceError
		networkErr   *statuspage.NetworkError
		malformedErr *statuspage.MalformedError
		feedErr      *feed.ParseError
	)

	switch {
	case errors.As(err, &unknownErr):
		return ExitUnknownService
	case errors.As(err, &networkErr):
		return ExitNetwork
	case errors.As(err, &malformedErr), errors.As(err, &feedErr):
		return ExitMalformed
	default:
		return ExitUnknownService
	}
}
