//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "ecommerce-api"
	ConsumerName = "shop-portal"

	StateBuyersBaseline = "buyers baseline"
	StateBuyerExists    = "buyer with id 101 exists"
	StateBuyerMissing   = "no buyer with id 404"
	StateOrderReady     = "buyer 101 and product 202 exist"
)

const (
	ExistingBuyerID   int64 = 101
	MissingBuyerID    int64 = 404
	ExistingProductID int64 = 202
	ExistingOrderID   int64 = 301
)

const (
	exampleBuyerName    = "Pact Buyer"
	exampleBuyerAddress = "1 Contract Lane"
	exampleBuyerEmail   = "pact.buyer@example.com"
	exampleProductName  = "Pact Keyboard"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the shop portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleBuyerPayload provides stable test data for buyer interactions.
func ExampleBuyerPayload() map[string]any {
	return map[string]any{
		"id":      ExistingBuyerID,
		"name":    exampleBuyerName,
		"address": exampleBuyerAddress,
		"email":   exampleBuyerEmail,
	}
}

// ExampleProductPayload provides stable test data for product interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":           ExistingProductID,
		"product_name": exampleProductName,
		"price":        79.99,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
