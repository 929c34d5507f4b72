// Command admin-token mints a bearer token for the administrator routes,
// for local development and scripting against a running server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/forgo/roster/api/internal/config"
	"github.com/forgo/roster/api/pkg/jwt"
)

func main() {
	auth0ID := flag.String("sub", "auth0|dev-admin", "Subject (auth0id) for the token")
	expMins := flag.Int("exp", 60*24, "Token expiration in minutes (default: 1 day)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	secret := cfg.Auth.Secret
	if secret == "" {
		secret = "dev-secret"
		fmt.Fprintln(os.Stderr, "warning: AUTH_JWT_SECRET not set, using the development default")
	}

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         secret,
		Issuer:         cfg.Auth.Issuer,
		Audience:       cfg.Auth.Audience,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		os.Exit(1)
	}

	token, err := jwtService.Sign(*auth0ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   *expMins * 60,
			"sub":          *auth0ID,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Admin Token Generated")
		fmt.Println("=====================")
		fmt.Printf("Subject:  %s\n", *auth0ID)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer <token>' http://localhost:%s/api/administrators\n", cfg.Server.Port)
	}
}
