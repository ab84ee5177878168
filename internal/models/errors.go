package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Goal errors
	ErrGoalTargetNotPositive = errors.New("goal targets must be larger than zero")
	ErrGoalAlreadyCompleted  = errors.New("this goal is already completed")
	ErrGoalNotCompleted      = errors.New("this goal is not completed, there is nothing to revert")
	ErrInsufficientBalance   = errors.New("your current balance is not sufficient to complete this goal")

	// Subscription errors
	ErrSubscriptionCostNotPositive = errors.New("subscription costs must be larger than zero")
)
