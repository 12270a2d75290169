package cmd

import (
	"context"
	"testing"

	"github.com/lawlens/lawlens/internal/appid"
)

func TestAppIdentityLoading(t *testing.T) {
	// Load app identity the same way the application does
	ctx := context.Background()
	identity, err := appid.Get(ctx)
	if err != nil {
		t.Fatalf("Failed to load app identity: %v", err)
	}
	if identity == nil {
		t.Fatal("App identity is nil")
	}

	// Check all expected fields are populated
	expectedFields := map[string]string{
		"BinaryName": identity.BinaryName,
		"EnvPrefix":  identity.EnvPrefix,
		"ConfigName": identity.ConfigName,
	}
	for fieldName, value := range expectedFields {
		if value == "" {
			t.Errorf("App identity field %s is empty (expected: non-empty)", fieldName)
		}
	}
}
