package webhook

import (
	"context"
	"fmt"

	"github.com/tejaswadiwala/torcc/internal/service/counter"
	"github.com/tejaswadiwala/torcc/internal/storage"
	"github.com/tejaswadiwala/torcc/internal/xslog"
)

type Processor struct {
	secret  []byte
	counter counter.Service
	dedup   storage.DedupStore
}

var _ Service = (*Processor)(nil)

type ProcessorOption func(*Processor)

// WithDedupStore enables webhook-ID deduplication. Redelivered
// webhooks are acknowledged without touching the counter.
func WithDedupStore(store storage.DedupStore) ProcessorOption {
	return func(p *Processor) { p.dedup = store }
}

func NewProcessor(secret string, counterService counter.Service, opts ...ProcessorOption) *Processor {
	p := &Processor{
		secret:  []byte(secret),
		counter: counterService,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Processor) ProcessWebhook(ctx context.Context, req ProcessRequest) error {
	logger := xslog.FromContext(ctx)

	if !Verify(req.Body, req.Signature, p.secret) {
		return ErrInvalidSignature
	}

	if req.Topic != TopicOrdersUpdated {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, req.Topic)
	}

	order, err := ParseOrder(req.Body)
	if err != nil {
		return err
	}

	price, err := order.CurrentTotalPrice()
	if err != nil {
		return err
	}

	if p.dedup != nil && req.WebhookID != "" {
		seen, err := p.dedup.Seen(ctx, req.WebhookID)
		if err != nil {
			// a dedup outage never blocks the counter update
			logger.ErrorContext(ctx, "dedup check failed, processing anyway",
				xslog.Error(err),
				xslog.WebhookID(req.WebhookID),
			)
		} else if seen {
			logger.InfoContext(ctx, "skipping redelivered webhook",
				xslog.WebhookID(req.WebhookID),
				xslog.ShopDomain(req.ShopDomain),
			)
			return nil
		}
	}

	if err := p.counter.Add(ctx, price); err != nil {
		return fmt.Errorf("failed to update sales counter: %w", err)
	}

	// marked only after the counter update succeeded: a failed
	// delivery stays unmarked so the upstream redelivery retries it
	if p.dedup != nil && req.WebhookID != "" {
		if err := p.dedup.MarkSeen(ctx, req.WebhookID); err != nil {
			logger.ErrorContext(ctx, "failed to mark webhook seen",
				xslog.Error(err),
				xslog.WebhookID(req.WebhookID),
			)
		}
	}

	attrs := []any{
		xslog.Topic(req.Topic),
		xslog.ShopDomain(req.ShopDomain),
	}
	if id, ok := order.ID(); ok {
		attrs = append(attrs, xslog.OrderID(id))
	}
	logger.InfoContext(ctx, "processed webhook", attrs...)

	return nil
}
