package v1

import (
	"time"

	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BalanceResponse struct {
	Error *string  `json:"error" example:"there is no setting matching your query"` // The error, if any occurred
	Data  *Balance `json:"data"`                                                     // The current balance
}

type Balance struct {
	Balance decimal.Decimal `json:"balance" example:"1485.5"` // Initial balance plus the sum of all transactions
}

type ActivityResponse struct {
	Error *string         `json:"error" example:"there is no setting matching your query"` // The error, if any occurred
	Data  []ActivityGroup `json:"data"`                                                     // Transactions grouped by day, most recent day first
}

// ActivityGroup is one day of ledger activity.
type ActivityGroup struct {
	Date         string        `json:"date" example:"15/01/2024"` // Day of the group in DD/MM/YYYY format, or "unknown"
	Transactions []Transaction `json:"transactions"`              // Transactions of that day, in recording order
}

func newActivityGroup(c *gin.Context, group models.ActivityGroup) ActivityGroup {
	transactions := make([]Transaction, 0, len(group.Transactions))
	for _, transaction := range group.Transactions {
		transactions = append(transactions, newTransaction(c, transaction))
	}

	return ActivityGroup{
		Date:         group.Date,
		Transactions: transactions,
	}
}

type ChartResponse struct {
	Error *string      `json:"error" example:"there is no setting matching your query"` // The error, if any occurred
	Data  []ChartPoint `json:"data"`                                                     // The running balance series, oldest point first
}

// ChartPoint is one point of the running-balance series.
type ChartPoint struct {
	Label   string          `json:"label" example:"Groceries"`           // Label of the transaction, shortened for display
	Date    *time.Time      `json:"date" example:"2024-01-15T00:00:00Z"` // Day of the transaction. Not set for the synthetic starting point
	Balance decimal.Decimal `json:"balance" example:"1485.5"`            // Balance after this transaction
}
