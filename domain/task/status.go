package task

import (
	"fmt"
	"strings"
)

// Status is the closed set of states a task can be in.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

var statuses = []Status{StatusPending, StatusInProgress, StatusDone}

// InvalidStatusError reports a value outside the Status enumeration.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q: must be one of %s", e.Value, strings.Join(StatusNames(), ", "))
}

// ParseStatus matches s against the member names, ignoring case.
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	for _, st := range statuses {
		if strings.EqualFold(trimmed, string(st)) {
			return st, nil
		}
	}
	return "", &InvalidStatusError{Value: s}
}

func StatusNames() []string {
	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = string(st)
	}
	return names
}

func (s Status) Valid() bool {
	for _, st := range statuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalText rejects anything that is not a member name, so JSON bodies
// and query parameters can only ever carry a valid Status.
func (s *Status) UnmarshalText(text []byte) error {
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
