package registry

import (
	"fmt"
	"strings"
)

// UnknownServiceError indicates a token that matched no registered
// service or alias.
type UnknownServiceError struct {
	Token string
	Known []string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service %q (available: %s)", e.Token, strings.Join(e.Known, ", "))
}
