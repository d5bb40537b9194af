package exchangerate

// LatestResponse is the response body of the latest rates endpoint.
type LatestResponse struct {
	Result    string             `json:"result"`
	BaseCode  string             `json:"base_code"`
	Rates     map[string]float64 `json:"rates"`
	ErrorType string             `json:"error-type"`
}
