package client

import (
	"context"
	"net/http"
	"net/url"
)

// CategoriesService covers the /categories endpoints.
type CategoriesService struct {
	client *Client
}

func (s *CategoriesService) List(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (s *CategoriesService) Get(ctx context.Context, slug string) (Category, error) {
	var out struct {
		Category Category `json:"category"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(slug), nil, nil, &out); err != nil {
		return Category{}, err
	}
	return out.Category, nil
}
