package shopifyclient

import (
	"context"

	shopifydomain "github.com/vfg2006/shopify-discount-api/infrastructure/integrator/shopify/domain"
)

const tagsAddMutation = `
mutation AddTags($id: ID!, $tags: [String!]!) {
  tagsAdd(id: $id, tags: $tags) {
    userErrors {
      field
      message
    }
  }
}`

const tagsRemoveMutation = `
mutation RemoveTags($id: ID!, $tags: [String!]!) {
  tagsRemove(id: $id, tags: $tags) {
    userErrors {
      field
      message
    }
  }
}`

func (c *ShopifyClient) AddTags(ctx context.Context, creds ShopCredentials, resourceID string, tags []string) error {
	variables := map[string]any{
		"id":   resourceID,
		"tags": tags,
	}

	var data shopifydomain.TagsAddData
	if err := c.execute(ctx, creds, tagsAddMutation, variables, &data); err != nil {
		return err
	}

	if userErrors := data.TagsAdd.UserErrors; len(userErrors) > 0 {
		return &shopifydomain.UserErrorsError{Action: "tagsAdd", Errors: userErrors}
	}

	return nil
}

func (c *ShopifyClient) RemoveTags(ctx context.Context, creds ShopCredentials, resourceID string, tags []string) error {
	variables := map[string]any{
		"id":   resourceID,
		"tags": tags,
	}

	var data shopifydomain.TagsRemoveData
	if err := c.execute(ctx, creds, tagsRemoveMutation, variables, &data); err != nil {
		return err
	}

	if userErrors := data.TagsRemove.UserErrors; len(userErrors) > 0 {
		return &shopifydomain.UserErrorsError{Action: "tagsRemove", Errors: userErrors}
	}

	return nil
}
