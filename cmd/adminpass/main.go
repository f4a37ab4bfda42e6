// Command adminpass writes the admin.json file the server reads its single
// administrator account from.
//
//	go run ./cmd/adminpass -username admin -password 's3cret' -out admin.json
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"weekly-booking/internal/pkg/password"
	"weekly-booking/internal/pkg/settings"
)

func main() {
	username := flag.String("username", "admin", "administrator login name")
	pw := flag.String("password", "", "administrator password (required)")
	out := flag.String("out", "admin.json", "file to write")
	flag.Parse()

	if *pw == "" {
		slog.Error("-password is required")
		os.Exit(2)
	}

	hash, err := password.HashPassword(*pw)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	raw, err := json.MarshalIndent(settings.AdminAccount{Username: *username, PasswordHash: hash}, "", "  ")
	if err != nil {
		slog.Error("failed to encode admin account", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, append(raw, '\n'), 0o600); err != nil {
		slog.Error("failed to write admin account", "path", *out, "error", err)
		os.Exit(1)
	}
	slog.Info("admin account written", "path", *out, "username", *username)
}
