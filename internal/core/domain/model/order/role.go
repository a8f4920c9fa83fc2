package order

import (
	"fmt"

	"ootdverse/internal/pkg/errs"
)

// Role is the party acting on an order.
type Role int

const (
	RoleUnknown Role = iota
	Buyer
	Seller

	// System is used for transitions driven by the platform itself, such as
	// payment confirmation or expiry of unpaid orders.
	System
)

var roleKeys = map[Role]string{
	Buyer:  "buyer",
	Seller: "seller",
	System: "system",
}

func ParseRole(key string) (Role, error) {
	for r, k := range roleKeys {
		if k == key {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", key))
}

func (r Role) Validate() error {
	if _, ok := roleKeys[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if k, ok := roleKeys[r]; ok {
		return k
	}
	return "unknown"
}

func (r Role) MarshalText() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
