package webhook

import (
	"bytes"
	"fmt"

	go_json "github.com/goccy/go-json"
)

// TopicOrdersUpdated is the only topic that mutates the sales counter.
const TopicOrdersUpdated = "orders/updated"

// Order is a verified orders/updated payload. Shopify order payloads
// are open-ended, so the body is held as a map and exposed through
// typed accessors for the few fields this service consumes.
type Order struct {
	fields map[string]any
}

// ParseOrder parses a verified payload. Never call it on bytes that
// have not passed Verify. Numbers are decoded as json.Number: order
// IDs exceed float64 precision.
func ParseOrder(data []byte) (*Order, error) {
	var fields map[string]any
	dec := go_json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to parse order payload: %w", err)
	}
	return &Order{fields: fields}, nil
}

// ID returns the numeric order ID, or false if absent.
func (o *Order) ID() (int64, bool) {
	num, ok := o.fields["id"].(go_json.Number)
	if !ok {
		return 0, false
	}
	id, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return id, true
}

// Name returns the human-facing order name (e.g. "#1001"), or false if absent.
func (o *Order) Name() (string, bool) {
	v, ok := o.fields["name"].(string)
	return v, ok
}

// CurrentTotalPrice returns the string-encoded order total.
// Shopify encodes money amounts as strings; a missing or non-string
// value is an error, not a zero.
func (o *Order) CurrentTotalPrice() (string, error) {
	v, ok := o.fields["current_total_price"]
	if !ok {
		return "", fmt.Errorf("order payload has no current_total_price")
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("current_total_price is %T, want string", v)
	}
	return s, nil
}
