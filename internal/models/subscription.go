package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subscription is a recurring-charge template. It does not book anything on
// its own, every payment is triggered explicitly.
type Subscription struct {
	DefaultModel
	Name string
	Cost decimal.Decimal `gorm:"type:DECIMAL(20,8);check:subscription_cost_positive,cost > 0"`
}

func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	return nil
}

func (s *Subscription) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(s.Cost) {
		return ErrSubscriptionCostNotPositive
	}

	return nil
}

// Pay books one billing event for the subscription. Paying twice books
// twice, there is no deduplication.
func (s Subscription) Pay(db *gorm.DB) (Transaction, error) {
	transaction := Transaction{
		Label:    fmt.Sprintf("%s payment", s.Name),
		Category: CategorySubscriptions,
		Amount:   s.Cost.Neg(),
	}

	err := db.Create(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}
