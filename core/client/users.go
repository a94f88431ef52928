package client

import (
	"context"
	"fmt"
	"net/http"
)

// UsersService covers the /users endpoints: profile, wallet, and addresses.
type UsersService struct {
	client *Client
}

func (s *UsersService) Profile(ctx context.Context) (User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/users/profile", nil, nil, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}

func (s *UsersService) UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodPut, "/users/profile", nil, params, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}

func (s *UsersService) Wallet(ctx context.Context) (Wallet, error) {
	var out struct {
		Wallet Wallet `json:"wallet"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/users/wallet", nil, nil, &out); err != nil {
		return Wallet{}, err
	}
	return out.Wallet, nil
}

// AddFunds tops up the wallet balance and returns the updated wallet.
func (s *UsersService) AddFunds(ctx context.Context, amount float64) (Wallet, error) {
	body := map[string]float64{"amount": amount}
	var out struct {
		Wallet Wallet `json:"wallet"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/users/wallet/add", nil, body, &out); err != nil {
		return Wallet{}, err
	}
	return out.Wallet, nil
}

func (s *UsersService) Addresses(ctx context.Context) ([]Address, error) {
	var out struct {
		Addresses []Address `json:"addresses"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/users/addresses", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Addresses, nil
}

func (s *UsersService) AddAddress(ctx context.Context, addr Address) (Address, error) {
	var out struct {
		Address Address `json:"address"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/users/addresses", nil, addr, &out); err != nil {
		return Address{}, err
	}
	return out.Address, nil
}

func (s *UsersService) UpdateAddress(ctx context.Context, id int64, addr Address) (Address, error) {
	var out struct {
		Address Address `json:"address"`
	}
	path := fmt.Sprintf("/users/addresses/%d", id)
	if err := s.client.do(ctx, http.MethodPut, path, nil, addr, &out); err != nil {
		return Address{}, err
	}
	return out.Address, nil
}

func (s *UsersService) DeleteAddress(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/users/addresses/%d", id), nil, nil, nil)
}
