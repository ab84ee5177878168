package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a named savings target. Completing it books the target amount as
// an expense, linked back to the goal so the completion can be reverted.
type Goal struct {
	DefaultModel
	Name      string
	Target    decimal.Decimal `gorm:"type:DECIMAL(20,8);check:goal_target_positive,target > 0"`
	Completed bool
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.Target) {
		return ErrGoalTargetNotPositive
	}

	return nil
}

// Complete marks the goal as completed and books the linked expense.
//
// Both changes happen in one database transaction: a completed goal without
// its linked ledger entry would break the balance bookkeeping. The guard is
// checked first, with no state change when the balance does not cover the
// target.
func (g *Goal) Complete(db *gorm.DB) (Transaction, error) {
	if g.Completed {
		return Transaction{}, ErrGoalAlreadyCompleted
	}

	balance, err := Balance(db)
	if err != nil {
		return Transaction{}, err
	}

	if balance.LessThan(g.Target) {
		return Transaction{}, ErrInsufficientBalance
	}

	goalID := g.ID
	transaction := Transaction{
		Label:    fmt.Sprintf("Goal reached: %s", g.Name),
		Category: CategoryGoals,
		Amount:   g.Target.Neg(),
		GoalID:   &goalID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(g).Select("Completed").Updates(Goal{Completed: true}).Error
		if err != nil {
			return err
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	g.Completed = true
	return transaction, nil
}

// Revert undoes a completed goal: the goal becomes pending again and every
// transaction linked to it is removed. Usually that is exactly one entry,
// but zero or several linked entries are handled as well.
func (g *Goal) Revert(db *gorm.DB) error {
	if !g.Completed {
		return ErrGoalNotCompleted
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(g).Select("Completed").Updates(Goal{Completed: false}).Error
		if err != nil {
			return err
		}

		return tx.Where("transactions.goal_id = ?", g.ID).Delete(&Transaction{}).Error
	})
	if err != nil {
		return err
	}

	g.Completed = false
	return nil
}
