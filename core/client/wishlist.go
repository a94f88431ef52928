package client

import (
	"context"
	"fmt"
	"net/http"
)

// WishlistService covers the /wishlist endpoints.
type WishlistService struct {
	client *Client
}

func (s *WishlistService) List(ctx context.Context) ([]WishlistItem, error) {
	var out struct {
		Items []WishlistItem `json:"items"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/wishlist", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *WishlistService) Add(ctx context.Context, productID int64) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/wishlist/%d", productID), nil, nil, nil)
}

func (s *WishlistService) Remove(ctx context.Context, productID int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/wishlist/%d", productID), nil, nil, nil)
}
