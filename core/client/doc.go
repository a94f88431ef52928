// Package client is the typed HTTP client for the storefront API.
//
// A Client exposes one service group per API area (Auth, Products, Categories,
// Cart, Orders, Users, Wishlist) and handles the common wire concerns: the
// {success, message, data} response envelope, per-request correlation ids,
// and typed APIError values carrying the server's human-readable message.
//
//	cfg := client.Config{BaseURL: "https://shop.example.com/api/v1"}
//	c, err := client.New(cfg)
//	if err != nil {
//		return err
//	}
//	products, err := c.Products.List(ctx, client.ListProductsParams{Page: 1})
//
// # Credential handling
//
// The client itself is credential-agnostic. Wire an AuthTransport into its
// HTTP client to attach the session's bearer token to every request and to
// transparently recover from expired access tokens: on a 401 response the
// transport performs exactly one token refresh and replays the original
// request once. A replayed request that is itself rejected is returned as-is,
// and the OnAuthFailure hook fires so the application can route the user back
// to its login entry point.
package client
