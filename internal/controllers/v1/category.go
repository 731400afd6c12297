package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/ledger"
)

type CategoryQueryFilter struct {
	Type ledger.TransactionType `form:"type" binding:"required"` // The transaction type to get the categories for
}

type CategoryListResponse struct {
	Data  []ledger.Category `json:"data" example:"Alimentação"`                                    // The suggested categories
	Error *string           `json:"error" example:"the type must be one of 'income' or 'expense'"` // The error, if any occurred
}

func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the categories suggested for a transaction type. Any other non-empty category can be used, too.
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Param			type	query		string	true	"income or expense"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.BindQuery(&filter); err != nil || !filter.Type.Valid() {
		s := errCategoryTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: ledger.SuggestedCategories(filter.Type),
	})
}
