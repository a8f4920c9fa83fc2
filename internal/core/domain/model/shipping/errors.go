package shipping

import "errors"

// ErrInvalidShippingParameters is returned when a fee cannot be computed for the
// given method or route. Use errors.Is to detect it.
var ErrInvalidShippingParameters = errors.New("invalid shipping parameters")
