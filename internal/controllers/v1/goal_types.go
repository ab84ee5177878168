package v1

import (
	"fmt"

	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name   string          `json:"name" example:"New laptop" default:""`                                                            // Name of the goal
	Target decimal.Decimal `json:"target" example:"750" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // How much money needs to be saved
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:   editable.Name,
		Target: editable.Target,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`              // The goal itself
	Complete string `json:"complete" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/complete"` // Marks the goal as reached
	Revert   string `json:"revert" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/revert"`     // Undoes a reached goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Completed bool      `json:"completed" example:"false"` // Whether the goal has been reached
	Links     GoalLinks `json:"links"`
}

// newGoal returns the API representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/goals/%s", url, model.ID)

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:   model.Name,
			Target: model.Target,
		},
		Completed: model.Completed,
		Links: GoalLinks{
			Self:     self,
			Complete: self + "/complete",
			Revert:   self + "/revert",
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

// GoalCompleteResponse is returned when a goal is completed. It contains
// the goal and the ledger entry the completion booked.
type GoalCompleteResponse struct {
	Error       *string      `json:"error" example:"your current balance is not sufficient to complete this goal"` // The error, if any occurred
	Data        *Goal        `json:"data"`                                                                         // The completed goal
	Transaction *Transaction `json:"transaction"`                                                                  // The ledger entry booked by the completion
}
