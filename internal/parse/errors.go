package parse

import "errors"

var (
	ErrEmptyText = errors.New("empty text")
)

// User-facing field messages. Low confidence, invalid format, missing data
// and connectivity failures each get a distinct string so the UI and the
// tests can tell them apart.
const (
	MsgLowConfidence   = "low confidence prediction"
	MsgInvalidDay      = "invalid date"
	MsgInvalidTime     = "invalid time"
	MsgMissingAmount   = "missing amount"
	MsgMissingProfile  = "missing health metrics"
	MsgNoConnection    = "check your connection"
	MsgUnknownActivity = "unrecognized activity"
)
