package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Profile | models.Transaction | models.Goal | models.CategoryRule](c *gin.Context, resource R, options gin.HandlerFunc) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where("id = ?", uri.ID.UUID).First(&resource).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}

// getResource binds the ID from the URI and loads the resource.
func getResource[R models.Profile | models.Transaction | models.Goal | models.CategoryRule](c *gin.Context, resource *R) error {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return err
	}

	return models.DB.Where("id = ?", uri.ID.UUID).First(resource).Error
}
