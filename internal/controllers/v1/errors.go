package v1

import (
	"errors"
	"net/http"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, ledger.ErrGoalNotFound) || errors.Is(err, ledger.ErrTransactionNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errProfileParameter = errors.New("the profile query parameter must be set")
	errGoalProfileFixed = errors.New("the profile of a goal cannot be changed")
	errReportFailed     = errors.New("the report could not be generated, please try again later")

	errTransactionDateImmutable = errors.New("the date of a transaction cannot be changed")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Analysis errors
var (
	errMonthsRange = errors.New("the number of months must be between 1 and 24")
)

// Category errors
var (
	errCategoryTypeInvalid = errors.New("the type must be one of 'income' or 'expense'")
)
