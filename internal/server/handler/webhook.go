package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/tejaswadiwala/torcc/internal/service/webhook"
	"github.com/tejaswadiwala/torcc/internal/xhttp"
	"github.com/tejaswadiwala/torcc/internal/xslog"
)

type Webhook struct {
	service webhook.Service
}

func NewWebhook(service webhook.Service) *Webhook {
	return &Webhook{service: service}
}

// HandleWebhook handles POST /webhooks/shopify requests.
func (h *Webhook) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	signature := r.Header.Get(xhttp.XShopifyHmacSHA256)
	topic := r.Header.Get(xhttp.XShopifyTopic)
	shopDomain := r.Header.Get(xhttp.XShopifyShopDomain)

	if signature == "" || topic == "" || shopDomain == "" {
		logger.WarnContext(ctx, "missing webhook headers",
			xslog.Topic(topic),
			xslog.ShopDomain(shopDomain),
		)
		xhttp.Error(w, http.StatusBadRequest)
		return
	}

	// signature verification runs over these exact bytes; the body is
	// never parsed or transcoded before Verify sees it
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read webhook body", xslog.Error(err))
		xhttp.Error(w, http.StatusInternalServerError)
		return
	}

	req := webhook.ProcessRequest{
		Body:       body,
		Signature:  signature,
		Topic:      topic,
		ShopDomain: shopDomain,
		WebhookID:  r.Header.Get(xhttp.XShopifyWebhookID),
	}

	if err := h.service.ProcessWebhook(ctx, req); err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			logger.WarnContext(ctx, "invalid webhook signature",
				xslog.Topic(topic),
				xslog.ShopDomain(shopDomain),
			)
			xhttp.Error(w, http.StatusUnauthorized)
			return
		}

		// for unhandled topics, return 200 (Shopify redelivers on non-2xx)
		if errors.Is(err, webhook.ErrUnknownTopic) {
			logger.WarnContext(ctx, "ignoring webhook topic", xslog.Topic(topic))
			xhttp.WriteOK(w)
			return
		}

		logger.ErrorContext(ctx, "failed to process webhook", xslog.Error(err))
		xhttp.Error(w, http.StatusInternalServerError)
		return
	}

	xhttp.WriteOK(w)
}
