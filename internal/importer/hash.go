package importer

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sha256String calculates the SHA256 hash of a given string and returns its string representation.
func Sha256String(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

// Hash identifies an imported transaction. Importing the same statement
// twice yields the same hashes.
func Hash(fitID string, date time.Time, amount decimal.Decimal, description string) string {
	return Sha256String(strings.Join([]string{
		fitID,
		date.UTC().Format(time.RFC3339),
		amount.StringFixed(2),
		description,
	}, "|"))
}
