package units

import "errors"

var (
	// ErrUnknownActivity means the activity name matched no known family.
	ErrUnknownActivity = errors.New("unknown activity")
	// ErrMissingProfile means calorie estimation has no body weight to work
	// with. Callers surface this, never a guessed figure.
	ErrMissingProfile = errors.New("missing health profile")
	// ErrMissingDuration means neither a duration, a distance, nor a rep
	// count was available to size the effort.
	ErrMissingDuration = errors.New("missing activity duration")
)
