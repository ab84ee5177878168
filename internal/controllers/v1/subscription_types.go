package v1

import (
	"fmt"

	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SubscriptionEditable struct {
	Name string          `json:"name" example:"Netflix" default:""`                                                                                   // Name of the subscription
	Cost decimal.Decimal `json:"cost" example:"12.99" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Cost of one billing cycle
}

// model returns the database resource for the API representation of the editable fields
func (editable SubscriptionEditable) model() models.Subscription {
	return models.Subscription{
		Name: editable.Name,
		Cost: editable.Cost,
	}
}

type SubscriptionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/subscriptions/91e4bed3-4f28-44a2-9095-46b4e2cfbd8e"`    // The subscription itself
	Pay  string `json:"pay" example:"https://example.com/api/v1/subscriptions/91e4bed3-4f28-44a2-9095-46b4e2cfbd8e/pay"` // Books one billing cycle as an expense
}

type Subscription struct {
	models.DefaultModel
	SubscriptionEditable
	Links SubscriptionLinks `json:"links"`
}

// newSubscription returns the API representation of the resource
func newSubscription(c *gin.Context, model models.Subscription) Subscription {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/subscriptions/%s", url, model.ID)

	return Subscription{
		DefaultModel: model.DefaultModel,
		SubscriptionEditable: SubscriptionEditable{
			Name: model.Name,
			Cost: model.Cost,
		},
		Links: SubscriptionLinks{
			Self: self,
			Pay:  self + "/pay",
		},
	}
}

type SubscriptionListResponse struct {
	Data  []Subscription `json:"data"`                                                          // List of resources
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubscriptionCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SubscriptionResponse `json:"data"`                                                          // List of created resources
}

func (t *SubscriptionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, SubscriptionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SubscriptionResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Subscription `json:"data"`                                                          // The resource
}

// SubscriptionPayResponse is returned when a billing cycle is booked. It
// contains the subscription and the ledger entry the payment created.
type SubscriptionPayResponse struct {
	Error       *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data        *Subscription `json:"data"`                                                          // The subscription that was paid
	Transaction *Transaction  `json:"transaction"`                                                   // The ledger entry booked by the payment
}
