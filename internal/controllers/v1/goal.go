package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", GetGoals)
		r.POST("", CreateGoals)
	}
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
	}
	{
		r.OPTIONS("/:id/deposits", OptionsGoalDeposits)
		r.POST("/:id/deposits", CreateDeposit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Goal{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/deposits [options]
func OptionsGoalDeposits(c *gin.Context) {
	resourceOptionsDetail(c, models.Goal{}, httputil.OptionsPost)
}

// @Summary		Create goals
// @Description	Creates savings goals. The current amount of new goals is always zero.
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalCreateResponse
// @Failure		400		{object}	GoalCreateResponse
// @Failure		404		{object}	GoalCreateResponse
// @Failure		500		{object}	GoalCreateResponse
// @Param			goals	body		[]GoalEditable	true	"Goals"
// @Router			/v1/goals [post]
func CreateGoals(c *gin.Context) {
	var editables []GoalEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := GoalCreateResponse{}

	var profiles []uuid.UUID
	for _, create := range editables {
		goal := create.model()

		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		if !slices.Contains(profiles, goal.ProfileID) {
			profiles = append(profiles, goal.ProfileID)
		}

		apiResource := newGoal(c, goal)
		r.Data = append(r.Data, GoalResponse{Data: &apiResource})
	}

	persist(profiles...)
	c.JSON(status, r)
}

// @Summary		Get goals
// @Description	Returns a list of savings goals in the order they were created
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalListResponse
// @Failure		400		{object}	GoalListResponse
// @Failure		500		{object}	GoalListResponse
// @Param			profile	query		string	false	"Filter by profile ID"
// @Param			name	query		string	false	"Filter by name"
// @Param			search	query		string	false	"Search for this text in the name"
// @Param			offset	query		uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of goals to return. Defaults to 50."
// @Router			/v1/goals [get]
func GetGoals(c *gin.Context) {
	var filter GoalQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GoalListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.Order("goals.created_at ASC, goals.rowid ASC").Where(&model, queryFields...)

	if filter.Search != "" {
		q = q.Where("goals.name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	q = q.Offset(int(filter.Offset))

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var goals []models.Goal
	err := q.Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Model(&models.Goal{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get goal
// @Description	Returns a specific savings goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	var goal models.Goal
	err := getResource(c, &goal)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Update goal
// @Description	Updates the name of a goal. Target amount and profile cannot be changed.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	var goal models.Goal
	err := getResource(c, &goal)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	var data GoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "TargetAmount") && !data.TargetAmount.Equal(goal.TargetAmount) {
		e := models.ErrGoalTargetImmutable.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "ProfileID") && data.ProfileID != goal.ProfileID {
		e := errGoalProfileFixed.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "Name") {
		goal.Name = data.Name
	}

	err = models.DB.Save(&goal).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	persist(goal.ProfileID)

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Deletes a savings goal. The expenses created by its deposits are kept.
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	var goal models.Goal
	err := getResource(c, &goal)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	persist(goal.ProfileID)
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Deposit into goal
// @Description	Adds the amount to the goal and creates an expense of the same amount in the category "Poupança"
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	DepositResponse
// @Failure		400		{object}	DepositResponse
// @Failure		404		{object}	DepositResponse
// @Failure		500		{object}	DepositResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			deposit	body		GoalDeposit	true	"Deposit"
// @Router			/v1/goals/{id}/deposits [post]
func CreateDeposit(c *gin.Context) {
	var goal models.Goal
	err := getResource(c, &goal)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	var deposit GoalDeposit
	err = httputil.BindData(c, &deposit)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	transaction, err := goal.Deposit(models.DB, deposit.Amount, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepositResponse{
			Error: &e,
		})
		return
	}

	persist(goal.ProfileID)

	c.JSON(http.StatusCreated, DepositResponse{
		Data: &Deposit{
			Goal:        newGoal(c, goal),
			Transaction: newTransaction(c, transaction),
		},
	})
}
