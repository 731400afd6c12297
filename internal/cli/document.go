package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/snapshot"
	"github.com/shopspring/decimal"
)

const snapshotExtension = ".json"

var (
	ErrSnapshotExtension = errors.New("snapshot files must have the .json extension")
	ErrAmountInvalid     = errors.New("the amount must be a number like 1234.56 or 1234,56")
)

// readDocument parses the snapshot file at path.
func readDocument(path string) (ledger.PersonData, error) {
	f, err := os.Open(path)
	if err != nil {
		return ledger.PersonData{}, err
	}
	defer f.Close()

	doc, err := snapshot.Parse(f)
	if err != nil {
		return ledger.PersonData{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// readOrCreateDocument is readDocument, but a missing file yields the
// default document.
func readOrCreateDocument(path string) (ledger.PersonData, error) {
	doc, err := readDocument(path)
	if errors.Is(err, os.ErrNotExist) {
		return ledger.Default(), nil
	}

	return doc, err
}

// writeDocument replaces the snapshot file at path atomically.
func writeDocument(path string, doc ledger.PersonData) error {
	if filepath.Ext(path) != snapshotExtension {
		return ErrSnapshotExtension
	}

	store, err := snapshot.New(filepath.Dir(path))
	if err != nil {
		return err
	}

	return store.Save(strings.TrimSuffix(filepath.Base(path), snapshotExtension), doc)
}

// parseAmount accepts both the decimal point and the pt-BR decimal comma.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrAmountInvalid
	}

	return amount, nil
}
