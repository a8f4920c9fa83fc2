package listing

import (
	"fmt"

	"ootdverse/internal/pkg/errs"
)

// Status is the availability of a listing.
type Status int

const (
	StatusUnknown Status = iota
	Active
	Pending
	Sold
)

var statusKeys = map[Status]string{
	Active:  "active",
	Pending: "pending",
	Sold:    "sold",
}

func ParseStatus(key string) (Status, error) {
	for s, k := range statusKeys {
		if k == key {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"listing status", fmt.Errorf("%q is not a valid listing status", key))
}

func (s Status) Validate() error {
	if _, ok := statusKeys[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"listing status", fmt.Errorf("%d is not a valid listing status", s))
	}
	return nil
}

func (s Status) String() string {
	if k, ok := statusKeys[s]; ok {
		return k
	}
	return "unknown"
}
