package currency

import "time"

const (
	// CacheTTL bounds how stale a served rate can get. Reference rates
	// refresh daily, so six hours keeps drift negligible.
	CacheTTL = 6 * time.Hour
	// CacheSize caps the number of cached currency pairs.
	CacheSize = 512
)
