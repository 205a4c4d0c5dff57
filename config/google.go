package config

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// ResolveGoogleCredentials returns the service account key material
// from one of three mutually exclusive sources, checked in order:
// GOOGLE_CREDENTIALS_JSON (inline JSON), GOOGLE_CREDENTIALS_BASE64
// (base64 encoded JSON), GOOGLE_APPLICATION_CREDENTIALS (file path).
func ResolveGoogleCredentials() ([]byte, error) {
	if raw := os.Getenv("GOOGLE_CREDENTIALS_JSON"); raw != "" {
		return []byte(raw), nil
	}

	if encoded := os.Getenv("GOOGLE_CREDENTIALS_BASE64"); encoded != "" {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode GOOGLE_CREDENTIALS_BASE64: %v", err)
		}
		return data, nil
	}

	if path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file %s: %v", path, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("no Google credentials configured: set GOOGLE_CREDENTIALS_JSON, GOOGLE_CREDENTIALS_BASE64 or GOOGLE_APPLICATION_CREDENTIALS")
}

// NewSheetsService builds an authenticated Google Sheets client from
// the resolved service account credentials. Called once at startup;
// the returned service is shared for the life of the process.
func NewSheetsService(ctx context.Context) (*sheets.Service, error) {
	credentials, err := ResolveGoogleCredentials()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Google credentials: %v", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %v", err)
	}

	return service, nil
}
