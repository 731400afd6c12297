package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
	ez_uuid "github.com/meu-painel/backend/internal/uuid"
)

type CombinedAnalysis struct {
	ledger.Combined
	Profiles []Profile `json:"profiles"` // The profiles that are combined
}

type CombinedAnalysisResponse struct {
	Error *string           `json:"error" example:"the profile query parameter must be set"` // The error, if any occurred
	Data  *CombinedAnalysis `json:"data"`                                                    // The combined figures
}

func RegisterAnalysisRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/combined", OptionsCombinedAnalysis)
	r.GET("/combined", GetCombinedAnalysis)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analysis
// @Success		204
// @Router			/v1/analysis/combined [options]
func OptionsCombinedAnalysis(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get combined analysis
// @Description	Returns income, expenses, balance, savings rate and expenses by category over all transactions of several profiles
// @Tags			Analysis
// @Produce		json
// @Success		200		{object}	CombinedAnalysisResponse
// @Failure		400		{object}	CombinedAnalysisResponse
// @Failure		404		{object}	CombinedAnalysisResponse
// @Failure		500		{object}	CombinedAnalysisResponse
// @Param			profile	query		[]string	true	"IDs of the profiles to combine"	collectionFormat(multi)
// @Router			/v1/analysis/combined [get]
func GetCombinedAnalysis(c *gin.Context) {
	values := c.QueryArray("profile")
	if len(values) == 0 {
		s := errProfileParameter.Error()
		c.JSON(http.StatusBadRequest, CombinedAnalysisResponse{
			Error: &s,
		})
		return
	}

	ids, err := ez_uuid.ParseAll(values)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CombinedAnalysisResponse{
			Error: &s,
		})
		return
	}

	people := make([]ledger.PersonData, 0, len(ids))
	profiles := make([]Profile, 0, len(ids))
	for _, id := range ids {
		var profile models.Profile
		err := models.DB.Where("id = ?", id).First(&profile).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CombinedAnalysisResponse{
				Error: &s,
			})
			return
		}

		doc, err := profile.Document(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CombinedAnalysisResponse{
				Error: &s,
			})
			return
		}

		people = append(people, doc)
		profiles = append(profiles, newProfile(c, profile))
	}

	c.JSON(http.StatusOK, CombinedAnalysisResponse{
		Data: &CombinedAnalysis{
			Combined: ledger.Combine(people...),
			Profiles: profiles,
		},
	})
}
