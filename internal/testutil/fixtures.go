// Package testutil provides fixture builders and helpers shared across tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

// SetupDataDir creates a temp directory holding the given documents as JSON
// files, keyed by document name. The directory is removed when the test ends.
//
// Example usage:
//
//	dir := testutil.SetupDataDir(t, map[string]any{
//	    "transactions.json": []model.Transaction{testutil.NewTransaction().Build()},
//	})
func SetupDataDir(t *testing.T, docs map[string]any) string {
	t.Helper()

	dir := t.TempDir()
	for name, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("Failed to marshal %s: %v", name, err)
		}
		WriteRawDoc(t, dir, name, data)
	}
	return dir
}

// WriteRawDoc writes raw bytes as a document file, for malformed-shape cases
// that cannot be expressed as a marshalable value.
func WriteRawDoc(t *testing.T, dir, name string, data []byte) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
type TransactionBuilder struct {
	tx model.Transaction
}

// NewTransaction creates a TransactionBuilder with sensible defaults: a sale
// of 1,000 shares at $250.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		tx: model.Transaction{
			ID:              "tx-1",
			ExecutiveName:   "Test Executive",
			ExecutiveTitle:  "Chief Test Officer",
			TransactionDate: "2024-01-15",
			TransactionType: model.TypeSale,
			Shares:          1000,
			PricePerShare:   250,
			TotalValue:      250000,
			FilingDate:      "2024-01-17",
			FormType:        "Form 4",
		},
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.tx.ID = id
	return b
}

// WithExecutive sets the executive name.
func (b *TransactionBuilder) WithExecutive(name string) *TransactionBuilder {
	b.tx.ExecutiveName = name
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(txType string) *TransactionBuilder {
	b.tx.TransactionType = txType
	return b
}

// WithDate sets the transaction date.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.tx.TransactionDate = date
	return b
}

// WithValue sets shares, price per share and total value together.
func (b *TransactionBuilder) WithValue(shares, pricePerShare float64) *TransactionBuilder {
	b.tx.Shares = shares
	b.tx.PricePerShare = pricePerShare
	b.tx.TotalValue = shares * pricePerShare
	return b
}

// Build returns the transaction.
func (b *TransactionBuilder) Build() model.Transaction {
	return b.tx
}

// NewHolder creates a holder record for tests.
func NewHolder(name string, shares, value float64) model.HolderRecord {
	return model.HolderRecord{
		InvestorName: name,
		Shares:       shares,
		ValueDollars: value,
		FilingDate:   "2024-02-14",
	}
}

// NewPricePoint creates a price point for tests.
func NewPricePoint(date string, price float64, transactions int) model.PricePoint {
	return model.PricePoint{Date: date, Price: price, Transactions: transactions}
}
