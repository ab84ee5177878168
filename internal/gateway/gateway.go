// Package gateway is the boundary to the language model that turns free
// text into ledger entries and answers budgeting questions.
//
// Both operations are best-effort: a failed or unparseable call degrades to
// an empty extraction or a fixed fallback message. The result types keep
// "the call failed" distinguishable from "nothing was found".
package gateway

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FallbackAdvice is returned whenever the advisor cannot be reached or does
// not produce a usable answer.
const FallbackAdvice = "The advisor could not be reached. Please try again."

// Entry is one extracted ledger entry candidate. Expenses carry a negative
// amount, income a positive one.
type Entry struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Label    string          `json:"label"`
}

// ExtractResult is the outcome of an extraction call.
type ExtractResult struct {
	Entries []Entry
	Failed  bool // true if the call failed or returned unusable data
}

// AdviceResult is the outcome of an advice call.
type AdviceResult struct {
	Text     string
	Fallback bool // true if Text is the fixed fallback message
}

// HistoryEntry is the slice of ledger history sent along with an advice
// request.
type HistoryEntry struct {
	Label    string          `json:"label"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
}

// Client is implemented by every extraction backend.
type Client interface {
	Extract(ctx context.Context, text string) ExtractResult
	Advise(ctx context.Context, history []HistoryEntry, balance decimal.Decimal, topic string) AdviceResult
}

// Disabled is the Client used when no API key is configured. Every call
// reports failure, so extraction yields nothing and advice falls back.
type Disabled struct{}

func (Disabled) Extract(_ context.Context, _ string) ExtractResult {
	return ExtractResult{Failed: true}
}

func (Disabled) Advise(_ context.Context, _ []HistoryEntry, _ decimal.Decimal, _ string) AdviceResult {
	return AdviceResult{Text: FallbackAdvice, Fallback: true}
}

// parseEntries extracts ledger entries from a model response.
//
// Models do not reliably return a bare JSON array even when told to, so a
// few shapes are accepted: a fenced code block around the JSON, an object
// wrapping the array under an arbitrary key, or a single entry object.
// A nil return means the response was unusable.
func parseEntries(raw string) []Entry {
	raw = stripFences(raw)

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		return entries
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil
	}

	// An object wrapping the array under some key
	for _, value := range wrapper {
		if err := json.Unmarshal(value, &entries); err == nil {
			return entries
		}
	}

	// A single entry, identified by its amount
	if _, ok := wrapper["amount"]; ok {
		var entry Entry
		if err := json.Unmarshal([]byte(raw), &entry); err == nil {
			return []Entry{entry}
		}
	}

	return nil
}

// stripFences removes a markdown code fence around a model response.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)

	if !strings.HasPrefix(raw, "```") {
		return raw
	}

	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")

	return strings.TrimSpace(raw)
}
