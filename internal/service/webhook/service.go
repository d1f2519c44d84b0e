package webhook

import (
	"context"
	"errors"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUnknownTopic     = errors.New("unknown topic")
)

type ProcessRequest struct {
	Body       []byte
	Signature  string
	Topic      string
	ShopDomain string
	WebhookID  string
}

type Service interface {
	// ProcessWebhook verifies the webhook signature, parses the order
	// payload, and applies its total price to the sales counter.
	// Returns ErrInvalidSignature if the signature doesn't match.
	// Returns ErrUnknownTopic for topics other than orders/updated
	// (caller may treat as success).
	ProcessWebhook(ctx context.Context, req ProcessRequest) error
}
