package shopify

import (
	"context"
	"fmt"
)

const getMetaobjectFieldQuery = `query getMetaobjectField($id: ID!, $key: String!) {
  metaobject(id: $id) {
    field(key: $key) {
      value
    }
  }
}`

const updateMetaobjectFieldMutation = `mutation updateMetaobjectField($id: ID!, $fields: [MetaobjectFieldInput!]!) {
  metaobjectUpdate(id: $id, metaobject: {fields: $fields}) {
    metaobject {
      id
    }
    userErrors {
      field
      message
    }
  }
}`

type metaobjectService struct {
	client *Client
}

var _ MetaobjectService = (*metaobjectService)(nil)

func (s *metaobjectService) GetField(ctx context.Context, id, key string) (string, error) {
	var data struct {
		Metaobject *struct {
			Field *struct {
				Value *string `json:"value"`
			} `json:"field"`
		} `json:"metaobject"`
	}

	variables := map[string]any{"id": id, "key": key}
	if err := s.client.do(ctx, getMetaobjectFieldQuery, variables, &data); err != nil {
		return "", err
	}

	if data.Metaobject == nil {
		return "", fmt.Errorf("metaobject %q not found", id)
	}
	if data.Metaobject.Field == nil || data.Metaobject.Field.Value == nil {
		return "", fmt.Errorf("metaobject %q has no field %q", id, key)
	}

	return *data.Metaobject.Field.Value, nil
}

func (s *metaobjectService) UpdateField(ctx context.Context, id, key, value string) error {
	var data struct {
		MetaobjectUpdate struct {
			Metaobject *struct {
				ID string `json:"id"`
			} `json:"metaobject"`
			UserErrors UserErrors `json:"userErrors"`
		} `json:"metaobjectUpdate"`
	}

	variables := map[string]any{
		"id": id,
		"fields": []map[string]any{
			{"key": key, "value": value},
		},
	}
	if err := s.client.do(ctx, updateMetaobjectFieldMutation, variables, &data); err != nil {
		return err
	}

	if len(data.MetaobjectUpdate.UserErrors) > 0 {
		return data.MetaobjectUpdate.UserErrors
	}

	return nil
}
