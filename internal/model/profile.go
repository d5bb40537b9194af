package model

// Sex is the profile field used by calorie estimation.
type Sex string

const (
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
	SexUnspecified Sex = ""
)

// Profile holds the health metrics the activity resolver needs. All fields
// are optional; a missing weight makes calorie estimation fail with a named
// error rather than a guessed figure.
type Profile struct {
	WeightKg *float64
	HeightCm *float64
	Age      *int
	Sex      Sex
}

// Scope carries per-request overrides threaded through a parse.
type Scope struct {
	BaseCurrency string
}
