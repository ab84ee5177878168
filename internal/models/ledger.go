package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ActivityDateUnknown is the group key for transactions without a date.
// It should not occur for transactions created through the API since those
// are stamped on save, but the grouping tolerates it.
const ActivityDateUnknown = "unknown"

// activityDateFormat is the day-granularity format used for group keys
// and exports. Dates are stored as timestamps and only formatted here,
// at the presentation boundary.
const activityDateFormat = "02/01/2006"

// Balance computes the current balance: the initial balance from the
// settings plus the sum of all transaction amounts. It is recomputed on
// every call, there is no cached value that could go stale.
func Balance(db *gorm.DB) (decimal.Decimal, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return decimal.Zero, err
	}

	var transactions []Transaction
	err = db.Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := settings.InitialBalance
	for _, t := range transactions {
		balance = balance.Add(t.Amount)
	}

	return balance, nil
}

// ActivityGroup is one day of ledger activity. Transactions appear in the
// order they were recorded.
type ActivityGroup struct {
	Date         string
	Transactions []Transaction
}

// GroupedByDate partitions all transactions into one group per calendar day,
// ordered from the most recent day to the oldest. Transactions without a
// date end up in the ActivityDateUnknown group, which is sorted last.
func GroupedByDate(db *gorm.DB) ([]ActivityGroup, error) {
	var transactions []Transaction
	err := db.Order("datetime(transactions.created_at) ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*ActivityGroup)
	days := make(map[string]time.Time)

	for _, t := range transactions {
		key := ActivityDateUnknown
		if !t.Date.IsZero() {
			day := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
			key = day.Format(activityDateFormat)
			days[key] = day
		}

		group, ok := groups[key]
		if !ok {
			group = &ActivityGroup{Date: key}
			groups[key] = group
		}
		group.Transactions = append(group.Transactions, t)
	}

	result := make([]ActivityGroup, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}

	sort.SliceStable(result, func(i, j int) bool {
		// The unknown group sorts after everything else
		if result[i].Date == ActivityDateUnknown {
			return false
		}
		if result[j].Date == ActivityDateUnknown {
			return true
		}
		return days[result[i].Date].After(days[result[j].Date])
	})

	return result, nil
}

// ChartPoint is one point of the running-balance series.
type ChartPoint struct {
	Label   string
	Date    time.Time
	Balance decimal.Decimal
}

// RunningSeries computes the chart series: all transactions sorted by date
// ascending, folded over the initial balance. Same-day transactions keep
// their creation order so that the series is deterministic. The first point
// is synthetic and holds the initial balance.
func RunningSeries(db *gorm.DB) ([]ChartPoint, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return nil, err
	}

	var transactions []Transaction
	err = db.Order("datetime(transactions.date) ASC, datetime(transactions.created_at) ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	series := make([]ChartPoint, 0, len(transactions)+1)
	series = append(series, ChartPoint{
		Label:   "Start",
		Balance: settings.InitialBalance,
	})

	balance := settings.InitialBalance
	for _, t := range transactions {
		balance = balance.Add(t.Amount)
		series = append(series, ChartPoint{
			Label:   t.Label,
			Date:    t.Date,
			Balance: balance,
		})
	}

	return series, nil
}
