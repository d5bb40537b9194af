package currency

import "errors"

// ErrRateUnavailable means no rate could be obtained for the requested pair,
// either because the upstream call failed or the pair is not quoted.
var ErrRateUnavailable = errors.New("exchange rate unavailable")
