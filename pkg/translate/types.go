package translate

// TranslateRequest is the input for a translation call.
type TranslateRequest struct {
	Text   string
	Target string // target language code, defaults to "en"
	Source string // optional source language hint
}

// Translation is a simplified representation of a translation result.
type Translation struct {
	Text           string
	DetectedSource string
}
