package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// @Summary		Delete everything
// @Description	Permanently deletes all resources. Snapshots are removed, too.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	var profiles []models.Profile
	err = models.DB.Find(&profiles).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Foreign keys are checked during cleanup,
	// add new models *before* any of the models
	// they reference
	resources := []any{
		models.Transaction{},
		models.Goal{},
		models.Profile{},
		models.CategoryRule{},
		models.Preference{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	tx.Commit()

	for _, p := range profiles {
		forget(p.ID)
	}

	log.Info().Int("profiles", len(profiles)).Msg("Deleted all resources")
	c.JSON(http.StatusNoContent, nil)
}
