package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/models"
)

type PreferenceLinks struct {
	Theme string `json:"theme" example:"https://example.com/api/v1/preferences/theme"` // URL of the color theme
}

type PreferenceLinksResponse struct {
	Links PreferenceLinks `json:"links"` // Links for the preferences
}

type ThemeEditable struct {
	Theme models.Theme `json:"theme" example:"dark"` // light, dark or system
}

type ThemeResponse struct {
	Error *string        `json:"error" example:"the theme must be one of 'light', 'dark' or 'system'"` // The error, if any occurred
	Data  *ThemeEditable `json:"data"`                                                                 // The theme
}

func RegisterPreferenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPreferences)
	r.GET("", GetPreferences)
	r.OPTIONS("/theme", OptionsTheme)
	r.GET("/theme", GetTheme)
	r.PATCH("/theme", UpdateTheme)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Router			/v1/preferences [options]
func OptionsPreferences(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Preferences
// @Description	Returns the links to the preferences
// @Tags			Preferences
// @Success		200	{object}	PreferenceLinksResponse
// @Router			/v1/preferences [get]
func GetPreferences(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, PreferenceLinksResponse{
		Links: PreferenceLinks{
			Theme: url + "/v1/preferences/theme",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Router			/v1/preferences/theme [options]
func OptionsTheme(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get theme
// @Description	Returns the color theme. "system" means the theme of the operating system is used.
// @Tags			Preferences
// @Produce		json
// @Success		200	{object}	ThemeResponse
// @Failure		500	{object}	ThemeResponse
// @Router			/v1/preferences/theme [get]
func GetTheme(c *gin.Context) {
	theme, err := models.GetTheme(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ThemeResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Data: &ThemeEditable{Theme: theme}})
}

// @Summary		Update theme
// @Description	Sets the color theme
// @Tags			Preferences
// @Accept			json
// @Produce		json
// @Success		200		{object}	ThemeResponse
// @Failure		400		{object}	ThemeResponse
// @Failure		500		{object}	ThemeResponse
// @Param			theme	body		ThemeEditable	true	"Theme"
// @Router			/v1/preferences/theme [patch]
func UpdateTheme(c *gin.Context) {
	var data ThemeEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ThemeResponse{
			Error: &s,
		})
		return
	}

	err = models.SetTheme(models.DB, data.Theme)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ThemeResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Data: &data})
}
