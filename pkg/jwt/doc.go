// Package jwt mints and verifies the HS256 bearer tokens that gate the
// administrator routes.
//
// The server itself only verifies tokens (see internal/middleware). This
// package exists so tooling can issue them too: the admin-token command
// uses Service.Sign to produce a token for local development, and Verify
// applies the same constraints the server does so a minted token can be
// checked before use.
package jwt
