package units_test

import (
	"errors"
	"math"
	"testing"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/units"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func near(a, b float64) bool { return math.Abs(a-b) < 0.1 }

func TestGramsFromText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		grams   float64
		matched string
		ok      bool
	}{
		{"plain grams", "200g pizza", 200, "200g", true},
		{"spaced grams", "ate 150 grams of rice", 150, "150 grams", true},
		{"kilograms", "1.5 kg chicken", 1500, "1.5 kg", true},
		{"comma decimal", "1,5kg", 1500, "1,5kg", true},
		{"ounces", "8 oz steak", 226.796, "8 oz", true},
		{"pounds", "2 lbs flour", 907.184, "2 lbs", true},
		{"no unit", "pizza for lunch", 0, "", false},
		{"bare number", "spent 200 on groceries", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grams, matched, ok := units.GramsFromText(tt.in)
			if ok != tt.ok {
				t.Fatalf("GramsFromText(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !near(grams, tt.grams) || matched != tt.matched {
				t.Errorf("GramsFromText(%q) = (%v, %q), want (%v, %q)", tt.in, grams, matched, tt.grams, tt.matched)
			}
		})
	}
}

func TestDistanceFromText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		km   float64
		ok   bool
	}{
		{"kilometers", "10km run", 10, true},
		{"short k", "ran 5k this morning", 5, true},
		{"meters", "400m sprint", 0.4, true},
		{"spelled meters", "swam 750 meters", 0.75, true},
		{"miles", "walked 3 miles", 4.83, true},
		{"kg is not distance", "45kg deadlift", 0, false},
		{"min is not distance", "10 min stretch", 0, false},
		{"no distance", "went running", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, _, ok := units.DistanceFromText(tt.in)
			if ok != tt.ok {
				t.Fatalf("DistanceFromText(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !near(km, tt.km) {
				t.Errorf("DistanceFromText(%q) = %v, want %v", tt.in, km, tt.km)
			}
		})
	}
}

func TestCaloriesFromText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kcal float64
		ok   bool
	}{
		{"kcal", "about 100 kcal", 100, true},
		{"cal attached", "250cal snack", 250, true},
		{"turkish", "120 kalori", 120, true},
		{"word without number", "counting calories", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kcal, _, ok := units.CaloriesFromText(tt.in)
			if ok != tt.ok {
				t.Fatalf("CaloriesFromText(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !near(kcal, tt.kcal) {
				t.Errorf("CaloriesFromText(%q) = %v, want %v", tt.in, kcal, tt.kcal)
			}
		})
	}
}

func TestNormalizeActivity(t *testing.T) {
	tests := []struct {
		in   string
		kind units.ActivityKind
		ok   bool
	}{
		{"run", units.ActivityRun, true},
		{"Running", units.ActivityRun, true},
		{"koşu", units.ActivityRun, true},
		{"morning run", units.ActivityRun, true},
		{"bisiklet sürdüm", units.ActivityCycle, true},
		{"push ups", units.ActivityPushup, true},
		{"jump rope", units.ActivityJumpRope, true},
		{"yüzme", units.ActivitySwim, true},
		{"quantum chess", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, ok := units.NormalizeActivity(tt.in)
			if ok != tt.ok || kind != tt.kind {
				t.Errorf("NormalizeActivity(%q) = (%q, %v), want (%q, %v)", tt.in, kind, ok, tt.kind, tt.ok)
			}
		})
	}
}

func TestCalories(t *testing.T) {
	profile := model.Profile{WeightKg: fptr(70)}

	tests := []struct {
		name        string
		input       units.ActivityInput
		calories    float64
		durationMin float64
		met         float64
	}{
		{
			// 10km at the assumed 9 km/h pace lands in the 9.8 MET band.
			name:        "run distance only",
			input:       units.ActivityInput{Name: "run", DistanceKm: fptr(10)},
			calories:    762.2,
			durationMin: 66.7,
			met:         9.8,
		},
		{
			name:        "walk duration only",
			input:       units.ActivityInput{Name: "walk", DurationMin: fptr(30)},
			calories:    122.5,
			durationMin: 30,
			met:         3.5,
		},
		{
			// 5km in 30min is 10 km/h, one band up from the default pace.
			name:        "run distance and duration agree",
			input:       units.ActivityInput{Name: "run", DistanceKm: fptr(5), DurationMin: fptr(30)},
			calories:    367.5,
			durationMin: 30,
			met:         10.5,
		},
		{
			// 120min claimed for 5km is past the 2x disagreement bound, so
			// the distance-derived 33.3min wins.
			name:        "run disagreement favors distance",
			input:       units.ActivityInput{Name: "run", DistanceKm: fptr(5), DurationMin: fptr(120)},
			calories:    381.1,
			durationMin: 33.3,
			met:         9.8,
		},
		{
			name:        "cycle fast band",
			input:       units.ActivityInput{Name: "cycling", DistanceKm: fptr(20), DurationMin: fptr(60)},
			calories:    560,
			durationMin: 60,
			met:         8.0,
		},
		{
			name:        "pushups from reps",
			input:       units.ActivityInput{Name: "pushups", Reps: iptr(30)},
			calories:    6.65,
			durationMin: 1.5,
			met:         3.8,
		},
		{
			// swim has no speed bands, so the base MET holds.
			name:        "swim distance only",
			input:       units.ActivityInput{Name: "swim", DistanceKm: fptr(1.5)},
			calories:    280,
			durationMin: 30,
			met:         8.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := units.Calories(tt.input, profile)
			if err != nil {
				t.Fatalf("Calories(%+v) error = %v", tt.input, err)
			}
			if !near(res.Calories, tt.calories) {
				t.Errorf("calories = %v, want %v", res.Calories, tt.calories)
			}
			if !near(res.DurationMin, tt.durationMin) {
				t.Errorf("duration = %v, want %v", res.DurationMin, tt.durationMin)
			}
			if res.MET != tt.met {
				t.Errorf("MET = %v, want %v", res.MET, tt.met)
			}
		})
	}
}

func TestCaloriesErrors(t *testing.T) {
	weight := fptr(70)

	t.Run("unknown activity", func(t *testing.T) {
		_, err := units.Calories(units.ActivityInput{Name: "quantum chess", DurationMin: fptr(30)}, model.Profile{WeightKg: weight})
		if !errors.Is(err, units.ErrUnknownActivity) {
			t.Fatalf("error = %v, want ErrUnknownActivity", err)
		}
	})

	t.Run("missing weight", func(t *testing.T) {
		_, err := units.Calories(units.ActivityInput{Name: "run", DistanceKm: fptr(10)}, model.Profile{})
		if !errors.Is(err, units.ErrMissingProfile) {
			t.Fatalf("error = %v, want ErrMissingProfile", err)
		}
	})

	t.Run("missing duration", func(t *testing.T) {
		_, err := units.Calories(units.ActivityInput{Name: "yoga"}, model.Profile{WeightKg: weight})
		if !errors.Is(err, units.ErrMissingDuration) {
			t.Fatalf("error = %v, want ErrMissingDuration", err)
		}
	})

	t.Run("reps without pace table", func(t *testing.T) {
		_, err := units.Calories(units.ActivityInput{Name: "plank", Reps: iptr(3)}, model.Profile{WeightKg: weight})
		if !errors.Is(err, units.ErrMissingDuration) {
			t.Fatalf("error = %v, want ErrMissingDuration", err)
		}
	})
}
