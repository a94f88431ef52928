package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ProductsService covers the catalog endpoints.
type ProductsService struct {
	client *Client
}

// ListProductsParams filters and paginates product listings. Zero values are
// omitted from the query.
type ListProductsParams struct {
	Page     int
	PerPage  int
	Sort     string // e.g. "price_asc", "created_at_desc"
	Search   string
	MinPrice float64
	MaxPrice float64
	Brand    string
	InStock  bool
}

func (p ListProductsParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	}
	if p.Brand != "" {
		q.Set("brand", p.Brand)
	}
	if p.InStock {
		q.Set("in_stock", "true")
	}
	return q
}

// ProductList is a page of products with pagination metadata.
type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

func (s *ProductsService) List(ctx context.Context, params ListProductsParams) (ProductList, error) {
	var out ProductList
	if err := s.client.do(ctx, http.MethodGet, "/products", params.query(), nil, &out); err != nil {
		return ProductList{}, err
	}
	return out, nil
}

func (s *ProductsService) Get(ctx context.Context, id int64) (Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &out); err != nil {
		return Product{}, err
	}
	return out.Product, nil
}

func (s *ProductsService) GetBySlug(ctx context.Context, slug string) (Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/products/slug/"+url.PathEscape(slug), nil, nil, &out); err != nil {
		return Product{}, err
	}
	return out.Product, nil
}

func (s *ProductsService) ByCategory(ctx context.Context, categorySlug string, params ListProductsParams) (ProductList, error) {
	var out ProductList
	path := "/products/category/" + url.PathEscape(categorySlug)
	if err := s.client.do(ctx, http.MethodGet, path, params.query(), nil, &out); err != nil {
		return ProductList{}, err
	}
	return out, nil
}

func (s *ProductsService) Search(ctx context.Context, queryText string) (ProductList, error) {
	q := url.Values{}
	q.Set("q", queryText)
	var out ProductList
	if err := s.client.do(ctx, http.MethodGet, "/products/search", q, nil, &out); err != nil {
		return ProductList{}, err
	}
	return out, nil
}

func (s *ProductsService) Featured(ctx context.Context) ([]Product, error) {
	var out struct {
		Products []Product `json:"products"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/products/featured", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// NewArrivals lists recently added products.
func (s *ProductsService) NewArrivals(ctx context.Context) ([]Product, error) {
	var out struct {
		Products []Product `json:"products"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/products/new", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (s *ProductsService) Reviews(ctx context.Context, productID int64) ([]Review, error) {
	var out struct {
		Reviews []Review `json:"reviews"`
	}
	path := fmt.Sprintf("/products/%d/reviews", productID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Reviews, nil
}

// ReviewParams is a product review submission.
type ReviewParams struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title,omitempty"`
	Comment string `json:"comment"`
}

func (s *ProductsService) AddReview(ctx context.Context, productID int64, params ReviewParams) error {
	path := fmt.Sprintf("/products/%d/reviews", productID)
	return s.client.do(ctx, http.MethodPost, path, nil, params, nil)
}
