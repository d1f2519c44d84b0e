package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port    string  `env:"PORT" envDefault:"8080"`
	Shopify Shopify `envPrefix:"SHOPIFY_"`
	Redis   Redis   `envPrefix:"REDIS_"`
}

type Shopify struct {
	ShopName      string `env:"SHOP_NAME,required"`
	APIVersion    string `env:"API_VERSION" envDefault:"2024-10"`
	AccessToken   string `env:"ACCESS_TOKEN,required"`
	WebhookSecret string `env:"WEBHOOK_SECRET,required"`
	MetaobjectID  string `env:"METAOBJECT_ID,required"`
	SalesFieldKey string `env:"SALES_FIELD_KEY" envDefault:"total_sales"`
}

// Redis is optional. When URL is set, webhook deliveries are
// deduplicated by X-Shopify-Webhook-Id before touching the counter.
type Redis struct {
	URL string `env:"URL"`
}

func (r Redis) Enabled() bool { return r.URL != "" }

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
