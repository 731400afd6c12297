package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/models"
)

type ProfileEditable struct {
	Name string `json:"name" example:"Meu Painel" default:"Meu Painel"` // Name of the profile. Empty names are replaced with the default.
}

func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		Name: editable.Name,
	}
}

type ProfileLinks struct {
	Self               string `json:"self" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                // The profile itself
	Transactions       string `json:"transactions" example:"https://example.com/api/v1/transactions?profile=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`           // Transactions of this profile
	Goals              string `json:"goals" example:"https://example.com/api/v1/goals?profile=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                         // Savings goals of this profile
	Analysis           string `json:"analysis" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/analysis"`                  // Dashboard figures
	Advice             string `json:"advice" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/advice"`                      // Financial tips
	SavingsSuggestions string `json:"savingsSuggestions" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/savings-suggestions"` // Savings suggestions based on the balance
	Snapshot           string `json:"snapshot" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/snapshot"`                  // The profile as snapshot document
	Report             string `json:"report" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/report"`                      // The PDF report
}

// Profile is the API representation of a Profile.
type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

func newProfile(c *gin.Context, model models.Profile) Profile {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/profiles/%s", url, model.ID)

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			Name: model.Name,
		},
		Links: ProfileLinks{
			Self:               self,
			Transactions:       fmt.Sprintf("%s/v1/transactions?profile=%s", url, model.ID),
			Goals:              fmt.Sprintf("%s/v1/goals?profile=%s", url, model.ID),
			Analysis:           self + "/analysis",
			Advice:             self + "/advice",
			SavingsSuggestions: self + "/savings-suggestions",
			Snapshot:           self + "/snapshot",
			Report:             self + "/report",
		},
	}
}

type ProfileListResponse struct {
	Data       []Profile   `json:"data"`                                                          // List of profiles
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProfileCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProfileResponse `json:"data"`                                                          // List of created profiles
}

func (p *ProfileCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProfileResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProfileResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this profile
	Data  *Profile `json:"data"`                                                          // The profile data, if creation was successful
}

// ProfileQueryFilter contains the fields that profiles can be filtered with.
type ProfileQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Search string `form:"search" filterField:"false"` // By string in the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first profile returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of profiles to return. Defaults to 50.
}
