package match

import (
	"fmt"
	"strings"
)

// Policy decides what the runner does with a line that cannot be parsed
type Policy int

const (
	// PolicyStop treats the first malformed line as the end of input
	PolicyStop Policy = iota
	// PolicySkip logs the line, counts it as malformed and carries on
	PolicySkip
	// PolicyFail aborts the run with a *LineError
	PolicyFail
)

// String returns the policy name used in flags and configuration
func (p Policy) String() string {
	switch p {
	case PolicyStop:
		return "stop"
	case PolicySkip:
		return "skip"
	case PolicyFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name into a Policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stop":
		return PolicyStop, nil
	case "skip":
		return PolicySkip, nil
	case "fail":
		return PolicyFail, nil
	default:
		return 0, fmt.Errorf("invalid parse error policy %q (want stop, skip or fail)", s)
	}
}
