package vars

// DefaultBaseCurrency applies when neither a term nor the request scope
// names a currency.
const DefaultBaseCurrency = "USD"
