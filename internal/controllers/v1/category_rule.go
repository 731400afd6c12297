package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryRules)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRules)
	}
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", GetCategoryRule)
		r.PATCH("/:id", UpdateCategoryRule)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryRules
// @Success		204
// @Router			/v1/category-rules [options]
func OptionsCategoryRules(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CategoryRule{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create category rules
// @Description	Creates category rules from the list of submitted category rule data. The response code is the highest response code number for a single category rule creation in the request.
// @Tags			CategoryRules
// @Produce		json
// @Success		201		{object}	CategoryRuleCreateResponse
// @Failure		400		{object}	CategoryRuleCreateResponse
// @Failure		500		{object}	CategoryRuleCreateResponse
// @Param			rules	body		[]CategoryRuleEditable	true	"Category rules"
// @Router			/v1/category-rules [post]
func CreateCategoryRules(c *gin.Context) {
	var editables []CategoryRuleEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, create := range editables {
		rule := create.model()

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newCategoryRule(c, rule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get category rules
// @Description	Returns a list of category rules in the order they are checked
// @Tags			CategoryRules
// @Produce		json
// @Success		200			{object}	CategoryRuleListResponse
// @Failure		400			{object}	CategoryRuleListResponse
// @Failure		500			{object}	CategoryRuleListResponse
// @Param			priority	query		uint	false	"Filter by priority"
// @Param			pattern		query		string	false	"Filter by pattern"
// @Param			category	query		string	false	"Filter by category"
// @Param			offset		query		uint	false	"The offset of the first category rule returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of category rules to return. Defaults to 50."
// @Router			/v1/category-rules [get]
func GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.Order("priority ASC, created_at ASC").Where(&model, queryFields...)

	q = q.Offset(int(filter.Offset))

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.CategoryRule
	err := q.Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Model(&models.CategoryRule{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]CategoryRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newCategoryRule(c, rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			CategoryRules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		404	{object}	CategoryRuleResponse
// @Failure		500	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	var rule models.CategoryRule
	err := getResource(c, &rule)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &apiResource})
}

// @Summary		Update category rule
// @Description	Update a category rule. Only values to be updated need to be specified.
// @Tags			CategoryRules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		CategoryRuleEditable	true	"Category rule"
// @Router			/v1/category-rules/{id} [patch]
func UpdateCategoryRule(c *gin.Context) {
	var rule models.CategoryRule
	err := getResource(c, &rule)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryRuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	var data CategoryRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	update := data.model()
	for _, field := range updateFields {
		switch field {
		case "Priority":
			rule.Priority = update.Priority
		case "Pattern":
			rule.Pattern = update.Pattern
		case "Category":
			rule.Category = update.Category
		}
	}

	err = models.DB.Save(&rule).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &apiResource})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			CategoryRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	var rule models.CategoryRule
	err := getResource(c, &rule)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
