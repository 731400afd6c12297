package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/internal/report"
	"github.com/meu-painel/backend/internal/savings"
	"github.com/meu-painel/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// topCategoriesCount is the number of categories shown in the dashboard.
const topCategoriesCount = 5

// profileDocument loads the profile from the URI together with its document.
func profileDocument(c *gin.Context) (models.Profile, ledger.PersonData, error) {
	var profile models.Profile
	err := getResource(c, &profile)
	if err != nil {
		return models.Profile{}, ledger.PersonData{}, err
	}

	doc, err := profile.Document(models.DB)
	if err != nil {
		return models.Profile{}, ledger.PersonData{}, err
	}

	return profile, doc, nil
}

// @Summary		Get analysis
// @Description	Returns the dashboard figures for a profile
// @Tags			Profiles
// @Produce		json
// @Success		200		{object}	AnalysisResponse
// @Failure		400		{object}	AnalysisResponse
// @Failure		404		{object}	AnalysisResponse
// @Failure		500		{object}	AnalysisResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query		string	false	"The last month of the history in YYYY-MM format. Defaults to the current month."
// @Param			months	query		int		false	"Number of months in the history. Defaults to 6."
// @Router			/v1/profiles/{id}/analysis [get]
func GetAnalysis(c *gin.Context) {
	var filter AnalysisQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AnalysisResponse{
			Error: &s,
		})
		return
	}

	reference := time.Now()
	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := fmt.Sprintf("the month must be in YYYY-MM format: %s", err)
			c.JSON(http.StatusBadRequest, AnalysisResponse{
				Error: &s,
			})
			return
		}
		reference = time.Time(month)
	}

	months := ledger.HistoryMonths
	if filter.Months != 0 {
		months = filter.Months
	}

	if months < 1 || months > maxHistoryMonths {
		s := errMonthsRange.Error()
		c.JSON(http.StatusBadRequest, AnalysisResponse{
			Error: &s,
		})
		return
	}

	_, doc, err := profileDocument(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalysisResponse{
			Error: &s,
		})
		return
	}

	summary := ledger.Summarize(doc.Transactions)
	analysis := Analysis{
		Summary:               summary,
		SavingsRateBand:       ledger.SavingsRateBand(summary.SavingsRate),
		SpendingControl:       ledger.SpendingControl(summary.Income, summary.Expense),
		AverageMonthlyExpense: ledger.AverageMonthlyExpense(summary.Expense),
		History:               ledger.MonthlyBalanceHistory(doc.Transactions, months, reference),
		Categories:            ledger.CategoryBreakdown(doc.Transactions),
		TopCategories:         ledger.TopCategories(doc.Transactions, topCategoriesCount),
	}

	if biggest, ok := ledger.BiggestExpense(doc.Transactions); ok {
		analysis.BiggestExpense = &biggest
	}

	if top, ok := ledger.TopCategory(ledger.ExpenseByCategory(doc.Transactions)); ok {
		analysis.TopCategory = &top
	}

	c.JSON(http.StatusOK, AnalysisResponse{Data: &analysis})
}

// @Summary		Get advice
// @Description	Generates the financial tips report for a profile
// @Tags			Profiles
// @Produce		json
// @Success		200		{object}	AdviceResponse
// @Failure		400		{object}	AdviceResponse
// @Failure		404		{object}	AdviceResponse
// @Failure		500		{object}	AdviceResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			date	query		string	false	"The date to create the report for in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/profiles/{id}/advice [get]
func GetAdvice(c *gin.Context) {
	var filter AdviceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AdviceResponse{
			Error: &s,
		})
		return
	}

	today := time.Now()
	if filter.Date != "" {
		date, err := types.ParseDate(filter.Date)
		if err != nil {
			s := fmt.Sprintf("the date must be in YYYY-MM-DD format: %s", err)
			c.JSON(http.StatusBadRequest, AdviceResponse{
				Error: &s,
			})
			return
		}
		today = date.Time()
	}

	_, doc, err := profileDocument(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AdviceResponse{
			Error: &s,
		})
		return
	}

	r, err := engine.Generate(c.Request.Context(), doc, today)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, AdviceResponse{
			Error: &s,
		})
		return
	}

	advice := Advice{
		Sections: make([]AdviceSection, 0, len(r.Sections)),
		Report:   r.Text,
	}
	for _, section := range r.Sections {
		advice.Sections = append(advice.Sections, newAdviceSection(section))
	}

	c.JSON(http.StatusOK, AdviceResponse{Data: &advice})
}

// @Summary		Get savings suggestions
// @Description	Returns amounts to save based on the current balance of the profile
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	SavingsSuggestionsResponse
// @Failure		400	{object}	SavingsSuggestionsResponse
// @Failure		404	{object}	SavingsSuggestionsResponse
// @Failure		500	{object}	SavingsSuggestionsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id}/savings-suggestions [get]
func GetSavingsSuggestions(c *gin.Context) {
	profile, doc, err := profileDocument(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSuggestionsResponse{
			Error: &s,
		})
		return
	}

	balance := ledger.Balance(doc.Transactions)
	suggestions, err := savings.Suggest(balance)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSuggestionsResponse{
			Error: &s,
		})
		return
	}

	goals, err := profile.Goals(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSuggestionsResponse{
			Error: &s,
		})
		return
	}

	data := SavingsSuggestions{
		Balance:     balance,
		Suggestions: suggestions,
	}

	if len(goals) > 0 {
		goal := newGoal(c, goals[0])
		data.Goal = &goal
	}

	c.JSON(http.StatusOK, SavingsSuggestionsResponse{Data: &data})
}

// @Summary		Apply savings suggestion
// @Description	Deposits the amount into the first goal of the profile. Without goals, a goal to create is proposed instead.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200			{object}	SavingsSuggestionApplyResponse	"No goal exists, the seed is returned"
// @Success		201			{object}	SavingsSuggestionApplyResponse	"The amount was deposited"
// @Failure		400			{object}	SavingsSuggestionApplyResponse
// @Failure		404			{object}	SavingsSuggestionApplyResponse
// @Failure		500			{object}	SavingsSuggestionApplyResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			suggestion	body		SavingsSuggestionApply	true	"Suggestion"
// @Router			/v1/profiles/{id}/savings-suggestions [post]
func ApplySavingsSuggestion(c *gin.Context) {
	var profile models.Profile
	err := getResource(c, &profile)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSuggestionApplyResponse{
			Error: &s,
		})
		return
	}

	var apply SavingsSuggestionApply
	err = httputil.BindData(c, &apply)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSuggestionApplyResponse{
			Error: &s,
		})
		return
	}

	if !apply.Amount.IsPositive() {
		s := ledger.ErrDepositNotPositive.Error()
		c.JSON(http.StatusBadRequest, SavingsSuggestionApplyResponse{
			Error: &s,
		})
		return
	}

	goals, err := profile.Goals(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSuggestionApplyResponse{
			Error: &s,
		})
		return
	}

	if len(goals) == 0 {
		seed := savings.Seed(apply.Amount)
		c.JSON(http.StatusOK, SavingsSuggestionApplyResponse{
			Data: &SavingsSuggestionApplied{Seed: &seed},
		})
		return
	}

	goal := goals[0]
	transaction, err := goal.Deposit(models.DB, apply.Amount, time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSuggestionApplyResponse{
			Error: &s,
		})
		return
	}

	persist(profile.ID)

	apiGoal := newGoal(c, goal)
	apiTransaction := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, SavingsSuggestionApplyResponse{
		Data: &SavingsSuggestionApplied{
			Goal:        &apiGoal,
			Transaction: &apiTransaction,
		},
	})
}

// @Summary		Get snapshot
// @Description	Returns the profile as snapshot document. The document can be imported with POST /v1/import/snapshot.
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ledger.PersonData
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id}/snapshot [get]
func GetSnapshot(c *gin.Context) {
	_, doc, err := profileDocument(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// @Summary		Get report
// @Description	Returns the PDF report of the profile
// @Tags			Profiles
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id}/report [get]
func GetReport(c *gin.Context) {
	profile, doc, err := profileDocument(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	err = report.PDF(&buf, doc, time.Now())
	if err != nil {
		log.Error().Str("profile", profile.ID.String()).Err(err).Msg("Report generation failed")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: errReportFailed.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename(doc.Name)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
