package xhttp

import "net/http"

const (
	XForwardedFor    = "X-Forwarded-For"
	XContentTypeOpts = "X-Content-Type-Options"
	XFrameOpts       = "X-Frame-Options"
	XXSSProtection   = "X-Xss-Protection"
	ReferrerPolicy   = "Referrer-Policy"
)

// Shopify webhook request headers.
const (
	XShopifyHmacSHA256 = "X-Shopify-Hmac-Sha256"
	XShopifyTopic      = "X-Shopify-Topic"
	XShopifyShopDomain = "X-Shopify-Shop-Domain"
	XShopifyWebhookID  = "X-Shopify-Webhook-Id"
)

// XShopifyAccessToken authenticates outbound Admin API calls.
const XShopifyAccessToken = "X-Shopify-Access-Token"

const ContentType = "Content-Type"

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	const headerName = "X-Request-ID"
	w.Header().Set(headerName, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	const applicationJSON = "application/json"
	w.Header().Set(ContentType, applicationJSON)
}

func SetHeaderContentTypeTextPlain(w http.ResponseWriter) {
	const textPlain = "text/plain; charset=utf-8"
	w.Header().Set(ContentType, textPlain)
}
