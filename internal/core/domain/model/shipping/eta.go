package shipping

import (
	"encoding/json"
	"fmt"

	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

// ErrETAIsNotConstructed is returned when a zero-value ETA is used.
var ErrETAIsNotConstructed = errs.NewValueIsRequiredError("ETA must be created via NewETA")

// ETA is an estimated delivery window in whole days.
type ETA struct { //nolint:recvcheck //using for validation
	minDays int
	maxDays int

	guard guard.ConstructorGuard
}

// NewETA validates 0 <= minDays <= maxDays.
func NewETA(minDays, maxDays int) (ETA, error) {
	if minDays < 0 {
		return ETA{}, errs.NewValueIsOutOfRangeError("minDays", minDays, 0, maxDays)
	}
	if minDays > maxDays {
		return ETA{}, errs.NewValueIsInvalidErrorWithCause(
			"eta", fmt.Errorf("min days %d exceeds max days %d", minDays, maxDays))
	}

	return ETA{
		minDays: minDays,
		maxDays: maxDays,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func mustETA(minDays, maxDays int) ETA {
	eta, err := NewETA(minDays, maxDays)
	if err != nil {
		panic(err)
	}
	return eta
}

func (e ETA) Validate() error {
	return e.guard.Validate(ErrETAIsNotConstructed)
}

func (e ETA) MinDays() int { return e.minDays }
func (e ETA) MaxDays() int { return e.maxDays }

func (e ETA) String() string {
	return fmt.Sprintf("%d-%d days", e.minDays, e.maxDays)
}

type etaJSON struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

func (e ETA) MarshalJSON() ([]byte, error) {
	return json.Marshal(etaJSON{MinDays: e.minDays, MaxDays: e.maxDays})
}

func (e *ETA) UnmarshalJSON(data []byte) error {
	var raw etaJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewETA(raw.MinDays, raw.MaxDays)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
