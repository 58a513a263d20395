package ytdata

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// iso8601Period matches the constrained period grammar the API uses for
// video durations: P[n]DT[h]H[m]M[s]S, e.g. "PT1H2M3S" or "P1DT0H0M0S".
var iso8601Period = regexp.MustCompile(`^P(?:(\d+)D?)?T(?:(\d{1,2})H)?(?:(\d{1,2})M)?(?:(\d{1,2})S)?$`)

// ParseDuration converts an ISO-8601 period string from a video's
// contentDetails section into a time.Duration. Strings outside the
// constrained grammar fail with ErrMalformedResponse; there is no silent
// zero default.
func ParseDuration(s string) (time.Duration, error) {
	m := iso8601Period.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "" && m[4] == "") {
		return 0, fmt.Errorf("%w: unknown duration format %q", ErrMalformedResponse, s)
	}

	var days, hours, minutes, seconds int64
	for i, dst := range []*int64{&days, &hours, &minutes, &seconds} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: unknown duration format %q", ErrMalformedResponse, s)
		}
		*dst = n
	}

	total := days*24*60*60 + hours*60*60 + minutes*60 + seconds
	return time.Duration(total) * time.Second, nil
}
