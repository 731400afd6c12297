package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Profiles      string `json:"profiles" example:"https://example.com/api/v1/profiles"`            // URL of Profile collection endpoint
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions"`    // URL of Transaction collection endpoint
	Goals         string `json:"goals" example:"https://example.com/api/v1/goals"`                  // URL of Goal collection endpoint
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of the suggested categories
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"` // URL of Category Rule collection endpoint
	Analysis      string `json:"analysis" example:"https://example.com/api/v1/analysis/combined"`   // URL of the combined analysis
	Import        string `json:"import" example:"https://example.com/api/v1/import"`                // URL of import list endpoint
	Preferences   string `json:"preferences" example:"https://example.com/api/v1/preferences"`      // URL of the preferences endpoint
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the instance export
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Profiles:      url + "/v1/profiles",
			Transactions:  url + "/v1/transactions",
			Goals:         url + "/v1/goals",
			Categories:    url + "/v1/categories",
			CategoryRules: url + "/v1/category-rules",
			Analysis:      url + "/v1/analysis/combined",
			Import:        url + "/v1/import",
			Preferences:   url + "/v1/preferences",
			Export:        url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
