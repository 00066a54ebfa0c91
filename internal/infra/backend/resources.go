package backend

import (
	"context"
	"net/http"

	"booking-portal/internal/domain/resource"

	"github.com/google/uuid"
)

func (c *Client) ListResources(ctx context.Context) ([]resource.Resource, error) {
	raw, err := c.Request(ctx, "/resources/", RequestOptions{})
	list, err := decodeInto[[]resource.Resource](raw, err)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []resource.Resource{}
	}
	return list, nil
}

func (c *Client) GetResource(ctx context.Context, id uuid.UUID) (resource.Resource, error) {
	raw, err := c.Request(ctx, "/resources/"+id.String(), RequestOptions{})
	return decodeInto[resource.Resource](raw, err)
}

func (c *Client) CreateResource(ctx context.Context, payload resource.Payload) (resource.Resource, error) {
	raw, err := c.Request(ctx, "/resources/", RequestOptions{Method: http.MethodPost, Body: payload})
	return decodeInto[resource.Resource](raw, err)
}

func (c *Client) UpdateResource(ctx context.Context, id uuid.UUID, payload resource.Payload) (resource.Resource, error) {
	raw, err := c.Request(ctx, "/resources/"+id.String(), RequestOptions{Method: http.MethodPut, Body: payload})
	return decodeInto[resource.Resource](raw, err)
}

func (c *Client) DeleteResource(ctx context.Context, id uuid.UUID) error {
	_, err := c.Request(ctx, "/resources/"+id.String(), RequestOptions{Method: http.MethodDelete})
	return err
}
