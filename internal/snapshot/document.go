package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/meu-painel/backend/internal/ledger"
)

var ErrInvalidDocument = errors.New("the snapshot document is invalid")

// Parse decodes and validates a document. Missing lists are treated as
// empty, a missing name as the default name.
func Parse(r io.Reader) (ledger.PersonData, error) {
	var raw struct {
		Name         *string               `json:"name"`
		Transactions []ledger.Transaction `json:"transactions"`
		SavingsGoals []ledger.SavingsGoal `json:"savingsGoals"`
	}

	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return ledger.PersonData{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if dec.More() {
		return ledger.PersonData{}, fmt.Errorf("%w: trailing data after the document", ErrInvalidDocument)
	}

	doc := ledger.Default()
	if raw.Name != nil {
		doc = doc.Rename(*raw.Name)
	}

	for _, t := range raw.Transactions {
		doc.Transactions = append(doc.Transactions, t.Normalize())
	}

	if raw.SavingsGoals != nil {
		doc.SavingsGoals = raw.SavingsGoals
	}

	if err := doc.Validate(); err != nil {
		return ledger.PersonData{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return doc, nil
}

// ParseBytes is Parse for an in-memory document.
func ParseBytes(b []byte) (ledger.PersonData, error) {
	return Parse(bytes.NewReader(b))
}

// Encode writes the document as indented JSON.
func Encode(w io.Writer, doc ledger.PersonData) error {
	if doc.Transactions == nil {
		doc.Transactions = []ledger.Transaction{}
	}

	if doc.SavingsGoals == nil {
		doc.SavingsGoals = []ledger.SavingsGoal{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
