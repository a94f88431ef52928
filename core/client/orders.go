package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// OrdersService covers the /orders endpoints.
type OrdersService struct {
	client *Client
}

// ListOrdersParams paginates order history.
type ListOrdersParams struct {
	Page    int
	PerPage int
	Status  string
}

// OrderList is a page of orders with pagination metadata.
type OrderList struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// CheckoutParams submits the checkout stub. The shipping address is sent as a
// preformatted string; payment is wallet-backed.
type CheckoutParams struct {
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method,omitempty"`
	CouponCode      string `json:"coupon_code,omitempty"`
}

// Coupon is the validation result for a discount code.
type Coupon struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	Valid         bool    `json:"valid"`
}

func (s *OrdersService) List(ctx context.Context, params ListOrdersParams) (OrderList, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}

	var out OrderList
	if err := s.client.do(ctx, http.MethodGet, "/orders", q, nil, &out); err != nil {
		return OrderList{}, err
	}
	return out, nil
}

func (s *OrdersService) Get(ctx context.Context, id int64) (Order, error) {
	var out struct {
		Order Order `json:"order"`
	}
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &out); err != nil {
		return Order{}, err
	}
	return out.Order, nil
}

// Checkout places an order from the server-side cart contents.
func (s *OrdersService) Checkout(ctx context.Context, params CheckoutParams) (Order, error) {
	var out struct {
		Order Order `json:"order"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/orders/checkout", nil, params, &out); err != nil {
		return Order{}, err
	}
	return out.Order, nil
}

func (s *OrdersService) Cancel(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", id), nil, nil, nil)
}

func (s *OrdersService) ValidateCoupon(ctx context.Context, code string) (Coupon, error) {
	body := map[string]string{"code": code}
	var out struct {
		Coupon Coupon `json:"coupon"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/orders/validate-coupon", nil, body, &out); err != nil {
		return Coupon{}, err
	}
	return out.Coupon, nil
}
