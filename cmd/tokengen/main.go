// Package main provides a CLI tool for generating test tokens for the
// attestry API. These tokens use dev/demo signing keys and will NOT work in
// production.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"attestry/internal/tokens"
	"attestry/pkg/domain"
)

const (
	// Dev signing key - matches config.go when JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"
	tokenIssuer   = "attestry"
)

func main() {
	var (
		address    = flag.String("address", "", "caller address the token acts as (0x-prefixed hex, required)")
		signingKey = flag.String("key", devSigningKey, "JWT signing key")
		ttl        = flag.Duration("ttl", 15*time.Minute, "token lifetime")
		asJSON     = flag.Bool("json", false, "print token with metadata as JSON")
	)
	flag.Parse()

	if *address == "" {
		fmt.Fprintln(os.Stderr, "error: -address is required")
		flag.Usage()
		os.Exit(2)
	}

	caller, err := domain.ParseAddress(*address)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid address: %v\n", err)
		os.Exit(2)
	}

	// Pin the clock so the printed expiry equals the claim's ExpiresAt.
	now := time.Now()
	svc := tokens.NewService(*signingKey, tokenIssuer, tokenIssuer, *ttl,
		tokens.WithClock(func() time.Time { return now }))
	token, err := svc.Generate(caller)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to generate token: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		out := map[string]string{
			"token":      token,
			"address":    caller.String(),
			"expires_at": now.Add(*ttl).UTC().Format(time.RFC3339),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(token)
}
