package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/internal/types"
	"golang.org/x/exp/slices"
)

// overdueCondition matches bills that were due before the given date.
const overdueCondition = "transactions.type = 'expense' AND transactions.due_date IS NOT NULL AND date(transactions.due_date) < date(?)"

func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create transactions
// @Description	Creates transactions from the list of submitted transaction data. The response code is the highest response code number for a single transaction creation in the request.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	var profiles []uuid.UUID
	for _, create := range editables {
		transaction := create.model()

		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		if !slices.Contains(profiles, transaction.ProfileID) {
			profiles = append(profiles, transaction.ProfileID)
		}

		apiResource := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &apiResource})
	}

	persist(profiles...)
	c.JSON(status, r)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, the most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			profile		query		string	false	"Filter by profile ID"
// @Param			type		query		string	false	"Filter by type"
// @Param			category	query		string	false	"Filter by category"
// @Param			search		query		string	false	"Search for this text in the description"
// @Param			overdue		query		bool	false	"Only bills that are overdue or only other transactions"
// @Param			dueFrom		query		string	false	"Bills due on or after this date (YYYY-MM-DD)"
// @Param			dueUntil	query		string	false	"Bills due on or before this date (YYYY-MM-DD)"
// @Param			offset		query		uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of transactions to return. Defaults to 50."
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.Order("datetime(transactions.date) DESC, transactions.rowid DESC").Where(&model, queryFields...)

	if filter.Search != "" {
		q = q.Where("transactions.description LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	if slices.Contains(setFields, "Overdue") {
		today := types.DateOf(time.Now()).Time()
		if filter.Overdue {
			q = q.Where(overdueCondition, today)
		} else {
			q = q.Not(overdueCondition, today)
		}
	}

	if !filter.DueFrom.IsZero() {
		q = q.Where("transactions.due_date IS NOT NULL AND date(transactions.due_date) >= date(?)", types.DateOf(filter.DueFrom).Time())
	}

	if !filter.DueUntil.IsZero() {
		q = q.Where("transactions.due_date IS NOT NULL AND date(transactions.due_date) <= date(?)", types.DateOf(filter.DueUntil).Time())
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Model(&models.Transaction{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var transaction models.Transaction
	err := getResource(c, &transaction)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var transaction models.Transaction
	err := getResource(c, &transaction)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var data TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// A zero date counts as not sent
	if slices.Contains(updateFields, "Date") && !data.Date.IsZero() && !data.Date.Equal(transaction.Date) {
		e := errTransactionDateImmutable.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	previousProfile := transaction.ProfileID
	update := data.model()
	for _, field := range updateFields {
		switch field {
		case "ProfileID":
			transaction.ProfileID = update.ProfileID
		case "Description":
			transaction.Description = update.Description
		case "Amount":
			transaction.Amount = update.Amount
		case "Type":
			transaction.Type = update.Type
		case "Category":
			transaction.Category = update.Category
		case "DueDate":
			transaction.DueDate = update.DueDate
		}
	}

	err = models.DB.Save(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	if previousProfile != transaction.ProfileID {
		persist(previousProfile, transaction.ProfileID)
	} else {
		persist(transaction.ProfileID)
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var transaction models.Transaction
	err := getResource(c, &transaction)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	persist(transaction.ProfileID)
	c.JSON(http.StatusNoContent, nil)
}
