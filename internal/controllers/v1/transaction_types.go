package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/internal/types"
	ez_uuid "github.com/meu-painel/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	ProfileID   uuid.UUID              `json:"profileId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // ID of the profile
	Description string                 `json:"description" example:"Conta de luz"`                          // Description, must not be empty
	Amount      decimal.Decimal        `json:"amount" example:"149.9" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount, must be positive
	Type        ledger.TransactionType `json:"type" example:"expense"`                                      // income or expense
	Category    ledger.Category        `json:"category" example:"Contas"`                                   // Category label. Defaults to "Outros".
	Date        time.Time              `json:"date" example:"2024-06-01T12:00:00Z"`                         // Creation time. Defaults to now and cannot be changed later.
	DueDate     *types.Date            `json:"dueDate" example:"2024-06-10"`                                // Bill due date. Only kept for expenses.
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		ProfileID:   editable.ProfileID,
		Description: editable.Description,
		Amount:      editable.Amount,
		Type:        editable.Type,
		Category:    editable.Category,
		Date:        editable.Date,
		DueDate:     editable.DueDate,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`  // The profile the transaction belongs to
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	ImportHash string           `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // Set for imported transactions
	Overdue    bool             `json:"overdue" example:"false"`                                                               // Is this a bill that was due before today?
	Links      TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			ProfileID:   model.ProfileID,
			Description: model.Description,
			Amount:      model.Amount,
			Type:        model.Type,
			Category:    model.Category,
			Date:        model.Date,
			DueDate:     model.DueDate,
		},
		ImportHash: model.ImportHash,
		Overdue:    model.Ledger().Overdue(time.Now()),
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

// TransactionQueryFilter contains the fields that transactions can be filtered with.
type TransactionQueryFilter struct {
	ProfileID ez_uuid.UUID           `form:"profile"`                                               // By ID of the profile
	Type      ledger.TransactionType `form:"type"`                                                  // By type
	Category  ledger.Category        `form:"category"`                                              // By category
	Search    string                 `form:"search" filterField:"false"`                            // By string in the description
	Overdue   bool                   `form:"overdue" filterField:"false"`                           // Only bills due before today, or only other transactions
	DueFrom   time.Time              `form:"dueFrom" time_format:"2006-01-02" filterField:"false"`  // Bills due on or after this date
	DueUntil  time.Time              `form:"dueUntil" time_format:"2006-01-02" filterField:"false"` // Bills due on or before this date
	Offset    uint                   `form:"offset" filterField:"false"`                            // The offset of the first transaction returned. Defaults to 0.
	Limit     int                    `form:"limit" filterField:"false"`                             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		ProfileID: f.ProfileID.UUID,
		Type:      f.Type,
		Category:  f.Category,
	}
}
