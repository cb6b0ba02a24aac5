package request

import "encoding/json"

// ChargeRequest wraps the raw processor payload so different provider
// integrations can vary in schema without the handler caring. card_last_four
// is recorded on the payment for the dashboard's receipts list.
type ChargeRequest struct {
	CardLastFour string          `json:"card_last_four"`
	Payment      json.RawMessage `json:"payment"`
}
