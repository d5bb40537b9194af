package units

import (
	"strings"

	"lifelog-engine/internal/model"
	"lifelog-engine/pkg/textnorm"
)

// Activity name lexicon, folded lowercase. Multiple languages map onto one
// family.
var activityNames = map[string]ActivityKind{
	"run": ActivityRun, "running": ActivityRun, "jog": ActivityRun, "jogging": ActivityRun,
	"kosu": ActivityRun, "kostum": ActivityRun, "course": ActivityRun, "laufen": ActivityRun, "correr": ActivityRun,
	"walk": ActivityWalk, "walking": ActivityWalk, "yuruyus": ActivityWalk, "yurudum": ActivityWalk,
	"marche": ActivityWalk, "gehen": ActivityWalk, "caminar": ActivityWalk, "caminhada": ActivityWalk,
	"cycle": ActivityCycle, "cycling": ActivityCycle, "bike": ActivityCycle, "biking": ActivityCycle,
	"bisiklet": ActivityCycle, "velo": ActivityCycle, "radfahren": ActivityCycle, "bicicleta": ActivityCycle,
	"swim": ActivitySwim, "swimming": ActivitySwim, "yuzme": ActivitySwim, "yuzdum": ActivitySwim,
	"natation": ActivitySwim, "schwimmen": ActivitySwim, "natacion": ActivitySwim,
	"hike": ActivityHike, "hiking": ActivityHike, "trekking": ActivityHike,
	"yoga": ActivityYoga, "pilates": ActivityYoga,
	"dance": ActivityDance, "dancing": ActivityDance, "dans": ActivityDance,
	"weights": ActivityWeights, "weightlifting": ActivityWeights, "gym": ActivityWeights, "lifting": ActivityWeights,
	"pushup": ActivityPushup, "pushups": ActivityPushup, "push up": ActivityPushup, "push ups": ActivityPushup, "sinav": ActivityPushup,
	"situp": ActivitySitup, "situps": ActivitySitup, "sit up": ActivitySitup, "sit ups": ActivitySitup, "mekik": ActivitySitup,
	"squat": ActivitySquat, "squats": ActivitySquat,
	"burpee": ActivityBurpee, "burpees": ActivityBurpee,
	"pullup": ActivityPullup, "pullups": ActivityPullup, "pull up": ActivityPullup, "pull ups": ActivityPullup, "barfiks": ActivityPullup,
	"plank":     ActivityPlank,
	"jump rope": ActivityJumpRope, "skipping": ActivityJumpRope, "ip atlama": ActivityJumpRope,
	"football": ActivityFootball, "soccer": ActivityFootball, "futbol": ActivityFootball,
	"basketball": ActivityBasketball, "basketbol": ActivityBasketball,
	"tennis": ActivityTennis, "tenis": ActivityTennis,
}

// Resting MET per activity family, used when no speed is computable.
var baseMET = map[ActivityKind]float64{
	ActivityRun:        9.8,
	ActivityWalk:       3.5,
	ActivityCycle:      7.5,
	ActivitySwim:       8.0,
	ActivityHike:       6.0,
	ActivityYoga:       3.0,
	ActivityDance:      5.5,
	ActivityWeights:    5.0,
	ActivityPushup:     3.8,
	ActivitySitup:      3.8,
	ActivitySquat:      5.0,
	ActivityBurpee:     8.0,
	ActivityPullup:     3.8,
	ActivityPlank:      3.0,
	ActivityJumpRope:   11.0,
	ActivityFootball:   7.0,
	ActivityBasketball: 6.5,
	ActivityTennis:     7.3,
}

// Average speed assumptions (km/h) for estimating duration from distance.
var avgSpeedKmh = map[ActivityKind]float64{
	ActivityRun:   9,
	ActivityWalk:  5,
	ActivityCycle: 16,
	ActivitySwim:  3,
	ActivityHike:  4.5,
}

// Seconds per repetition for bodyweight exercises.
var secondsPerRep = map[ActivityKind]float64{
	ActivityPushup: 3,
	ActivitySitup:  3,
	ActivitySquat:  4,
	ActivityBurpee: 6,
	ActivityPullup: 4,
}

type speedBand struct {
	maxKmh float64
	met    float64
}

// Speed-banded MET tables. The last band is open-ended.
var speedBands = map[ActivityKind][]speedBand{
	ActivityRun: {
		{8, 8.3}, {9.7, 9.8}, {11.3, 10.5}, {12.9, 11.8}, {14.5, 12.8}, {0, 14.5},
	},
	ActivityWalk: {
		{3.2, 2.0}, {4.8, 3.0}, {5.6, 3.8}, {6.4, 4.3}, {0, 5.0},
	},
	ActivityCycle: {
		{16, 4.0}, {19.2, 6.8}, {22.5, 8.0}, {25.7, 10.0}, {0, 12.0},
	},
}

// NormalizeActivity resolves a free-text activity name to its family.
func NormalizeActivity(name string) (ActivityKind, bool) {
	folded := textnorm.Fold(strings.TrimSpace(name))
	if kind, ok := activityNames[folded]; ok {
		return kind, true
	}
	// try word pairs then single words so "morning run", "ip atlama" and
	// "did 20 push ups" all resolve; slugged names arrive with underscores
	words := strings.Fields(strings.ReplaceAll(folded, "_", " "))
	for i := 0; i+1 < len(words); i++ {
		if kind, ok := activityNames[words[i]+" "+words[i+1]]; ok {
			return kind, true
		}
	}
	for _, w := range words {
		if kind, ok := activityNames[w]; ok {
			return kind, true
		}
	}
	return "", false
}

// Calories estimates the energy burned by an activity:
// MET × weight(kg) × duration(h). Duration falls back from the model
// estimate to a distance-derived estimate to a repetition count; when both
// a model estimate and a distance-derived figure exist and disagree by more
// than 2× either way, the distance-derived one wins. Distance plus duration
// refines MET through the speed bands.
func Calories(input ActivityInput, profile model.Profile) (ActivityResult, error) {
	kind, ok := NormalizeActivity(input.Name)
	if !ok {
		return ActivityResult{}, ErrUnknownActivity
	}
	if profile.WeightKg == nil || *profile.WeightKg <= 0 {
		return ActivityResult{Kind: kind}, ErrMissingProfile
	}
	weight := *profile.WeightKg

	duration, err := resolveDuration(kind, input)
	if err != nil {
		return ActivityResult{Kind: kind}, err
	}

	met := baseMET[kind]
	res := ActivityResult{Kind: kind, DurationMin: duration}
	if input.DistanceKm != nil && duration > 0 {
		speed := *input.DistanceKm / (duration / 60)
		if banded, ok := lookupSpeedBand(kind, speed); ok {
			met = banded
			res.SpeedKmh = &speed
		}
	}
	res.MET = met
	res.Calories = met * weight * (duration / 60)
	return res, nil
}

// resolveDuration picks the duration in minutes per the fallback ladder.
func resolveDuration(kind ActivityKind, input ActivityInput) (float64, error) {
	var derived float64
	if input.DistanceKm != nil {
		if speed, ok := avgSpeedKmh[kind]; ok {
			derived = *input.DistanceKm / speed * 60
		}
	}
	if input.DurationMin != nil && *input.DurationMin > 0 {
		d := *input.DurationMin
		if derived > 0 && (d > derived*2 || d < derived*0.5) {
			return derived, nil
		}
		return d, nil
	}
	if derived > 0 {
		return derived, nil
	}
	if input.Reps != nil && *input.Reps > 0 {
		if sec, ok := secondsPerRep[kind]; ok {
			return float64(*input.Reps) * sec / 60, nil
		}
	}
	return 0, ErrMissingDuration
}

func lookupSpeedBand(kind ActivityKind, speedKmh float64) (float64, bool) {
	bands, ok := speedBands[kind]
	if !ok {
		return 0, false
	}
	for _, b := range bands {
		if b.maxKmh == 0 || speedKmh < b.maxKmh {
			return b.met, true
		}
	}
	return 0, false
}
