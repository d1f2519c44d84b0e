package shopify

import "context"

type MetaobjectService interface {
	// GetField returns the string value of one field on a metaobject.
	// Errors if the metaobject or the field does not exist.
	GetField(ctx context.Context, id, key string) (string, error)

	// UpdateField sets one field on a metaobject. userErrors in the
	// mutation payload are returned as UserErrors.
	UpdateField(ctx context.Context, id, key, value string) error
}
