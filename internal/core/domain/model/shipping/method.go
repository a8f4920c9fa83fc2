package shipping

import (
	"fmt"

	"ootdverse/internal/pkg/errs"
)

// Method identifies a delivery option: a platform carrier, self delivery by the
// seller, or an in-person meetup.
type Method int

const (
	// MethodUnknown is the zero value and never a valid method.
	MethodUnknown Method = iota
	GHN
	GHTK
	ViettelPost
	SelfDelivery
	Meetup
)

var methodKeys = map[Method]string{
	GHN:          "ghn",
	GHTK:         "ghtk",
	ViettelPost:  "viettel_post",
	SelfDelivery: "self_delivery",
	Meetup:       "meetup",
}

// platformCarriers is the fixed enumeration order used when listing options.
var platformCarriers = []Method{GHN, GHTK, ViettelPost}

// PlatformCarriers returns the platform carriers in their display order.
func PlatformCarriers() []Method {
	out := make([]Method, len(platformCarriers))
	copy(out, platformCarriers)
	return out
}

// ParseMethod converts a method key ("ghn", "self_delivery", ...) into a Method.
func ParseMethod(key string) (Method, error) {
	for m, k := range methodKeys {
		if k == key {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"method", fmt.Errorf("%q is not a supported shipping method", key))
}

// Validate rejects MethodUnknown and out of range values.
func (m Method) Validate() error {
	if _, ok := methodKeys[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%d is not a valid shipping method", m))
	}
	return nil
}

// String returns the method key, or "unknown".
func (m Method) String() string {
	if k, ok := methodKeys[m]; ok {
		return k
	}
	return "unknown"
}

// Type classifies the method into platform, self or meetup.
func (m Method) Type() MethodType {
	switch m {
	case GHN, GHTK, ViettelPost:
		return TypePlatform
	case SelfDelivery:
		return TypeSelf
	case Meetup:
		return TypeMeetup
	default:
		return TypeUnknown
	}
}

// IsPlatform reports whether the fee comes from the carrier rate table.
func (m Method) IsPlatform() bool {
	return m.Type() == TypePlatform
}

func (m Method) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MethodType decides whether a fee formula, a fixed fee, or no fee applies.
type MethodType int

const (
	TypeUnknown MethodType = iota
	TypePlatform
	TypeSelf
	TypeMeetup
)

var methodTypeKeys = map[MethodType]string{
	TypePlatform: "platform",
	TypeSelf:     "self",
	TypeMeetup:   "meetup",
}

func (t MethodType) String() string {
	if k, ok := methodTypeKeys[t]; ok {
		return k
	}
	return "unknown"
}

func (t MethodType) MarshalText() ([]byte, error) {
	if _, ok := methodTypeKeys[t]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid method type", t))
	}
	return []byte(t.String()), nil
}

func (t *MethodType) UnmarshalText(text []byte) error {
	for mt, k := range methodTypeKeys {
		if k == string(text) {
			*t = mt
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid method type", string(text)))
}
