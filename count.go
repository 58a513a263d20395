package ytdata

import (
	"fmt"
	"strconv"
)

// parseCount converts a statistics counter from its wire form (a decimal
// string) to an integer. The counter is guaranteed by the API contract
// whenever its section is present, so a missing or unparseable value is a
// malformed response, never a silent zero.
func parseCount(s *string, name, id string) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: %s statistics has no %s", ErrMalformedResponse, id, name)
	}
	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s has bad %s %q", ErrMalformedResponse, id, name, *s)
	}
	return n, nil
}
