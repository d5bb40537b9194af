package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier prompts
const (
	PromptClassifySystem = `You are an intent classifier for a life-logging assistant. Classify the user's message into exactly one intent.

Intents:
1. meal: food or drink consumed ("ate 2 eggs", "coffee with milk")
2. expense: money spent ("spent 20 usd on groceries", "taxi 150")
3. income: money received ("got paid 3000 usd", "sold my old bike for 50")
4. event: appointment or calendar entry ("dentist tomorrow at 10am")
5. reminder: something to be reminded about ("remind me to call mom")
6. activity: physical exercise ("ran 5 km", "30 min yoga")
7. work_start: starting a work or focus session ("starting work", "clock in")
8. work_end: ending a work or focus session ("done for today", "clock out")
9. calorie_adjustment: a signed calorie correction ("+200 kcal", "-150 kcal snack")
10. journal: diary note, mood, or free reflection ("feeling great today")

Use "none" when no intent fits.

Return JSON only:
{
  "intent": "meal|expense|income|event|reminder|activity|work_start|work_end|calorie_adjustment|journal|none",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence"
}`
)

// Classifier configuration
const (
	ClassifyTemperature        = 0.1
	ClassifyFallbackConfidence = 0.5
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "failed to parse JSON, falling back to none"
	ErrMsgUnknownIntent   = "unknown intent label, falling back to none"
)

// Fallback reasons
const (
	ReasonParsingError  = "fallback due to parsing error"
	ReasonUnknownIntent = "fallback due to unknown intent label"
)
