package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/models"
	ez_uuid "github.com/meu-painel/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	ProfileID    uuid.UUID       `json:"profileId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                      // ID of the profile. Cannot be changed.
	Name         string          `json:"name" example:"Viagem"`                                                                                        // Name of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"5000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount to save. Cannot be changed.
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		ProfileID:    editable.ProfileID,
		Name:         editable.Name,
		TargetAmount: editable.TargetAmount,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/fd2a8c0e-6a37-4dd5-ab23-c1b4b7bd5a3c"`              // The goal itself
	Profile  string `json:"profile" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`        // The profile the goal belongs to
	Deposits string `json:"deposits" example:"https://example.com/api/v1/goals/fd2a8c0e-6a37-4dd5-ab23-c1b4b7bd5a3c/deposits"` // Deposit money into the goal
}

// Goal is the API representation of a savings goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"1250"` // The saved amount. Only changed by deposits.
	Progress      decimal.Decimal `json:"progress" example:"25"`        // Saved share of the target in percent
	Achieved      bool            `json:"achieved" example:"false"`     // Is the target reached?
	Links         GoalLinks       `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/goals/%s", url, model.ID)
	l := model.Ledger()

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			ProfileID:    model.ProfileID,
			Name:         model.Name,
			TargetAmount: model.TargetAmount,
		},
		CurrentAmount: model.CurrentAmount,
		Progress:      l.Progress(),
		Achieved:      l.Achieved(),
		Links: GoalLinks{
			Self:     self,
			Profile:  fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
			Deposits: self + "/deposits",
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created goals
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
	Data  *Goal   `json:"data"`                                                          // The goal data, if creation was successful
}

// GoalQueryFilter contains the fields that goals can be filtered with.
type GoalQueryFilter struct {
	ProfileID ez_uuid.UUID `form:"profile"`                    // By ID of the profile
	Name      string       `form:"name"`                       // By name
	Search    string       `form:"search" filterField:"false"` // By string in the name
	Offset    uint         `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		ProfileID: f.ProfileID.UUID,
		Name:      f.Name,
	}
}

type GoalDeposit struct {
	Amount decimal.Decimal `json:"amount" example:"100" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount to deposit
}

type Deposit struct {
	Goal        Goal        `json:"goal"`        // The goal after the deposit
	Transaction Transaction `json:"transaction"` // The expense mirroring the deposit
}

type DepositResponse struct {
	Error *string  `json:"error" example:"deposits must be larger than zero"` // The error, if any occurred
	Data  *Deposit `json:"data"`                                              // The deposit
}
