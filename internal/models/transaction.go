package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single ledger entry. The sign of the amount decides
// whether it is income or an expense.
type Transaction struct {
	DefaultModel
	Date     time.Time
	Label    string
	Category string
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	GoalID   *uuid.UUID      // Set for the transaction a completed goal creates
}

// Categories for transactions the system creates on its own.
const (
	CategoryGoals         = "Goals"
	CategorySubscriptions = "Subscriptions"
)

// BeforeSave stamps transactions without a date with the current time
// and sets the timezone for the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// Income reports whether the transaction adds money to the balance.
func (t Transaction) Income() bool {
	return t.Amount.IsPositive()
}
