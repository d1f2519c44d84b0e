package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/tejaswadiwala/torcc/internal/version"
	"github.com/tejaswadiwala/torcc/internal/xhttp"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func ShopDomain(shop string) slog.Attr {
	const shopKey = "shop_domain"
	return slog.String(shopKey, shop)
}

func Topic(topic string) slog.Attr {
	const topicKey = "topic"
	return slog.String(topicKey, topic)
}

func WebhookID(id string) slog.Attr {
	const webhookIDKey = "webhook_id"
	return slog.String(webhookIDKey, id)
}

func OrderID(id int64) slog.Attr {
	const orderIDKey = "order_id"
	return slog.Int64(orderIDKey, id)
}

func Counter(value int) slog.Attr {
	const counterKey = "counter"
	return slog.Int(counterKey, value)
}

func Delta(delta int) slog.Attr {
	const deltaKey = "delta"
	return slog.Int(deltaKey, delta)
}
