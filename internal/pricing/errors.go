package pricing

import "errors"

// Errors returned by the pricing engine. They are terminal for a single
// pricing call; retrying with the same inputs cannot succeed.
var (
	ErrInvalidPrice            = errors.New("price must be within (0, 200] percent of par")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrMaturedSecurity         = errors.New("security has matured at settlement")
	ErrYieldNotConvergent      = errors.New("yield did not converge")
	ErrUnsupportedSecurityType = errors.New("unsupported security type")
)
