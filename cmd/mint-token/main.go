// Command mint-token issues a signed access token for an owner ID. Meant for
// local development and API exploration; production tokens come from the
// identity provider.
//
// Usage: mint-token <owner-uuid>
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/internal/auth"
	"github.com/heartmarshall/braindump-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <owner-uuid>", os.Args[0])
	}

	ownerID, err := uuid.Parse(os.Args[1])
	if err != nil {
		log.Fatalf("invalid owner id: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	token, err := tokens.GenerateAccessToken(ownerID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
