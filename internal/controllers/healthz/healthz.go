// Package healthz reports if the backend can serve requests.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterRoutes registers the routes for the healthz endpoint.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// Options returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns data about the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Success		204
//	@Failure		500	{object}	httputil.HTTPError
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	if models.DB == nil {
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Err(err).Msg("Health check")
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	c.Status(http.StatusNoContent)
}
