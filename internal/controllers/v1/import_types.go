package v1

import (
	ez_uuid "github.com/meu-painel/backend/internal/uuid"
)

type ImportLinks struct {
	OFX      string `json:"ofx" example:"https://example.com/api/v1/import/ofx"`           // Import bank statements in OFX or QFX format
	Snapshot string `json:"snapshot" example:"https://example.com/api/v1/import/snapshot"` // Import a snapshot document as new profile
}

type ImportLinksResponse struct {
	Links ImportLinks `json:"links"` // Links for the import endpoints
}

type ImportOFXQuery struct {
	ProfileID ez_uuid.UUID `form:"profile"` // ID of the profile to import the transactions to
}

type ImportResult struct {
	Transactions []Transaction `json:"transactions"`           // The imported transactions
	Duplicates   int           `json:"duplicates" example:"3"` // Number of statement lines skipped because they were imported before
}

type ImportResponse struct {
	Error *string       `json:"error" example:"the statement could not be parsed"` // The error, if any occurred
	Data  *ImportResult `json:"data"`                                              // The result of the import
}
