package usecase

// Configuration
const (
	// ConfidenceThreshold is the shared gate below which model-derived
	// values are marked low-confidence instead of trusted.
	ConfidenceThreshold = 0.6

	ExtractTemperature = 0.2

	// SubjectSeparator splits multi-subject lines ("pizza + burger").
	SubjectSeparator = "+"
)

// Extraction prompts, one per intent family. Each asks for JSON only; the
// response is repaired before decoding so minor model formatting slips do
// not fail the extraction.
const (
	PromptExtractMeal = `You extract meal data from a life-log line.

Portion reference (typical cooked weights):
- bread slice: 25g, bagel: 90g, tortilla: 50g
- rice or pasta per cup: 160g, small bowl: 200g, large bowl: 300g
- meat or fish palm-size serving: 100g, large serving: 150g
- egg: 50g, cheese slice: 20g, butter pat: 5g
- apple, orange or banana: 120g, handful of berries: 70g
- side salad: 80g, main salad: 200g
- pizza slice: 110g, whole small pizza: 450g
- burger: 220g, sandwich: 180g, kebab wrap: 330g
- soup bowl: 250g, stew portion: 300g
- chocolate bar: 45g, cookie: 15g, cake slice: 80g
- coffee with milk: 30 kcal, soda can: 140 kcal, beer pint: 200 kcal
Size modifiers: small x0.7, large x1.4, half x0.5, double x2.

List every food or drink in the line. Estimate grams and calories from the
reference when the line gives no explicit quantity. Set is_menu true when
the line names a fixed menu or combo rather than individual foods.

Return JSON only:
{
  "items": [{"name": "pizza", "grams": 200, "calories": 520}],
  "is_menu": false,
  "source_name": "portion reference",
  "confidence": 0.0-1.0
}`

	PromptExtractMoney = `You extract %s data from a life-log line.

Identify what the money was for, the amount, and the currency if one is
stated. Do not guess a currency.

Return JSON only:
{
  "object": "short subject",
  "amount": 12.5,
  "currency": "USD",
  "confidence": 0.0-1.0
}`

	PromptExtractSchedule = `You extract %s data from a life-log line.

Identify the subject, the day, and the time if stated. Day is "today",
"tomorrow", a weekday name, "next_<weekday>", or YYYY-MM-DD. Time is 24h
"HH:MM". Keep a bare 1-12 hour literal when the text gives no am/pm marker.

Return JSON only:
{
  "object": "short subject",
  "day": "tomorrow",
  "time": "15:00",
  "confidence": 0.0-1.0
}`

	PromptExtractActivity = `You extract exercise data from a life-log line.

Identify the activity name, distance in kilometers, duration in minutes,
and repetition count when stated. Do not estimate calories.

Return JSON only:
{
  "object": "run",
  "distance_km": 5,
  "duration_min": 30,
  "reps": 20,
  "confidence": 0.0-1.0
}`

	PromptExtractWork = `You extract work-session data from a life-log line.

Identify the project or task name if one is stated, and the day and time if
stated. Day is "today", "tomorrow", a weekday name, or YYYY-MM-DD. Time is
24h "HH:MM".

Return JSON only:
{
  "object": "project name",
  "day": "today",
  "time": "09:00",
  "confidence": 0.0-1.0
}`

	PromptExtractAdjustment = `You extract a signed calorie adjustment from a life-log line.

Negative means calories removed, positive means calories added.

Return JSON only:
{
  "object": "reason",
  "calories": -150,
  "confidence": 0.0-1.0
}`

	PromptExtractJournal = `You extract journal data from a life-log line.

Identify a short subject, a single mood emoji if the text expresses a mood,
and a location if one is mentioned.

Return JSON only:
{
  "object": "short subject",
  "mood": "🙂",
  "location": "home",
  "confidence": 0.0-1.0
}`
)
