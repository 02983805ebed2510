// Package openapi provides clients for the OpenAPI backend under its two
// authentication schemes.
//
// KeyClient signs every request with HMAC-SHA256 over a canonical message
// (see the signing package); TokenClient presents a static token header,
// optionally refreshed through TokenManager.
//
//	client, err := openapi.NewKeyClient(openapi.Config{
//	    BaseURL: "https://api.example.com",
//	    Credentials: signing.Credentials{APIKey: "key", APISecret: "secret"},
//	})
//	result, err := client.Get(ctx, "v1/orders", map[string]string{"page": "2"})
//
// Successful responses are coerced to a decoded JSON value when the body
// parses, or the raw body text otherwise. Status >= 400 yields a typed
// status error carrying the code and raw body.
package openapi
