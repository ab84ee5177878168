package v1

import (
	"fmt"
	"time"

	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date     time.Time       `json:"date" example:"2024-01-15T00:00:00Z"`                                                           // Day the transaction was booked. Defaults to the current date when empty
	Label    string          `json:"label" example:"Groceries" default:""`                                                          // Description of the transaction
	Category string          `json:"category" example:"Food" default:""`                                                            // Category of the transaction
	Amount   decimal.Decimal `json:"amount" example:"-14.5" minimum:"-999999999999.99999999" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Negative for expenses, positive for income
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:     editable.Date,
		Label:    editable.Label,
		Category: editable.Category,
		Amount:   editable.Amount,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	GoalID *uuid.UUID       `json:"goalId"` // Set for the entry a completed goal booked
	Links  TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:     model.Date,
			Label:    model.Label,
			Category: model.Category,
			Amount:   model.Amount,
		},
		GoalID: model.GoalID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of resources
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created resources
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}
