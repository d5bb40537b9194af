package units

// ActivityKind is a normalized activity family.
type ActivityKind string

const (
	ActivityRun        ActivityKind = "run"
	ActivityWalk       ActivityKind = "walk"
	ActivityCycle      ActivityKind = "cycle"
	ActivitySwim       ActivityKind = "swim"
	ActivityHike       ActivityKind = "hike"
	ActivityYoga       ActivityKind = "yoga"
	ActivityDance      ActivityKind = "dance"
	ActivityWeights    ActivityKind = "weights"
	ActivityPushup     ActivityKind = "pushup"
	ActivitySitup      ActivityKind = "situp"
	ActivitySquat      ActivityKind = "squat"
	ActivityBurpee     ActivityKind = "burpee"
	ActivityPullup     ActivityKind = "pullup"
	ActivityPlank      ActivityKind = "plank"
	ActivityJumpRope   ActivityKind = "jump_rope"
	ActivityFootball   ActivityKind = "football"
	ActivityBasketball ActivityKind = "basketball"
	ActivityTennis     ActivityKind = "tennis"
)

// ActivityInput is what a handler knows about an activity mention before
// calorie resolution.
type ActivityInput struct {
	Name        string   // free-text activity name
	DistanceKm  *float64 // from text or model
	DurationMin *float64 // model-estimated duration
	Reps        *int     // repetition count for bodyweight exercises
}

// ActivityResult is the resolved calorie estimate with its inputs made
// explicit for display.
type ActivityResult struct {
	Kind        ActivityKind
	Calories    float64
	DurationMin float64
	MET         float64
	SpeedKmh    *float64 // set when derived from distance and duration
}
