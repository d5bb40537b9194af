// Package objectext derives the canonical object slug of a logged line once
// its temporal parts are resolved.
package objectext

import (
	"lifelog-engine/pkg/datemath"
	"lifelog-engine/pkg/textnorm"
)

// Extract reduces a line to a slug naming what it is about: noise and the
// already-resolved day/time spans go first, then command prefixes and
// courtesy phrases, then the remainder is slugified. When stripping leaves
// nothing the fallback is slugified instead, then the untouched original, so
// the result is only empty for an empty original.
func Extract(original, fallback string, r datemath.Result) string {
	out := textnorm.StripNoise(original)
	out = datemath.StripTemporal(out, r)
	out = datemath.StripCommandPrefix(out)
	out = datemath.StripCourtesy(out)
	out = textnorm.StripBrackets(out)
	out = textnorm.Condense(out)

	if slug := textnorm.Slugify(out); slug != "" {
		return slug
	}
	if slug := textnorm.Slugify(fallback); slug != "" {
		return slug
	}
	return textnorm.Slugify(original)
}
