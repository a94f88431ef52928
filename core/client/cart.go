package client

import (
	"context"
	"fmt"
	"net/http"
)

// CartService covers the server-side cart endpoints. All mutators are used as
// mirror calls by the cart manager; only Get reads server state back.
type CartService struct {
	client *Client
}

func (s *CartService) Get(ctx context.Context) (ServerCart, error) {
	var out ServerCart
	if err := s.client.do(ctx, http.MethodGet, "/cart", nil, nil, &out); err != nil {
		return ServerCart{}, err
	}
	return out, nil
}

func (s *CartService) AddItem(ctx context.Context, productID int64, quantity int) error {
	body := map[string]any{"product_id": productID, "quantity": quantity}
	return s.client.do(ctx, http.MethodPost, "/cart/items", nil, body, nil)
}

func (s *CartService) UpdateItem(ctx context.Context, productID int64, quantity int) error {
	body := map[string]any{"quantity": quantity}
	path := fmt.Sprintf("/cart/items/%d", productID)
	return s.client.do(ctx, http.MethodPut, path, nil, body, nil)
}

func (s *CartService) RemoveItem(ctx context.Context, productID int64) error {
	path := fmt.Sprintf("/cart/items/%d", productID)
	return s.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.client.do(ctx, http.MethodDelete, "/cart", nil, nil, nil)
}
