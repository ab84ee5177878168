package v1_test

import (
	"context"
	"net/http"
	"testing"

	v1 "github.com/CarlosRW/Fince-AI-Budget/internal/controllers/v1"
	"github.com/CarlosRW/Fince-AI-Budget/internal/gateway"
	"github.com/CarlosRW/Fince-AI-Budget/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient is a gateway.Client returning canned results. It records the
// advice history so tests can verify what the advisor would see.
type stubClient struct {
	extract gateway.ExtractResult
	advice  gateway.AdviceResult

	history []gateway.HistoryEntry
	balance decimal.Decimal
}

func (s *stubClient) Extract(_ context.Context, _ string) gateway.ExtractResult {
	return s.extract
}

func (s *stubClient) Advise(_ context.Context, history []gateway.HistoryEntry, balance decimal.Decimal, _ string) gateway.AdviceResult {
	s.history = history
	s.balance = balance
	return s.advice
}

// withStub replaces the assistant for the duration of a test.
func (suite *TestSuiteStandard) withStub(stub *stubClient) {
	previous := v1.Assistant
	v1.Assistant = stub
	suite.T().Cleanup(func() { v1.Assistant = previous })
}

func (suite *TestSuiteStandard) TestExtract() {
	suite.withStub(&stubClient{
		extract: gateway.ExtractResult{
			Entries: []gateway.Entry{
				{Label: "groceries", Category: "Food", Amount: decimal.NewFromFloat(-20)},
				{Label: "salary", Category: "Income", Amount: decimal.NewFromFloat(500)},
			},
		},
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/extract", map[string]any{
		"text": "spent 20 on groceries and got 500 salary",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExtractResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.False(suite.T(), response.Failed)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "groceries", response.Data[0].Data.Label)
	assert.True(suite.T(), response.Data[1].Data.Amount.Equal(decimal.NewFromFloat(500)))

	// The transactions are in the ledger
	balance := getTestBalance(suite.T())
	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(480)), "balance is %s", balance)
}

func (suite *TestSuiteStandard) TestExtractFailed() {
	suite.withStub(&stubClient{
		extract: gateway.ExtractResult{Failed: true},
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/extract", map[string]any{
		"text": "mumble mumble",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExtractResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Failed)
	assert.Len(suite.T(), response.Data, 0)

	// Nothing was created
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestExtractValidation() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Empty text", map[string]any{"text": ""}},
		{"Whitespace text", map[string]any{"text": "   "}},
		{"Broken JSON", `{ broken`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/extract", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExtractDisabled() {
	// The default client is the disabled one, extraction reports failure
	// instead of creating anything
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/extract", map[string]any{
		"text": "spent 20 on groceries",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExtractResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Failed)
}

func (suite *TestSuiteStandard) TestAdvice() {
	stub := &stubClient{
		advice: gateway.AdviceResult{Text: "Track your subscriptions, they add up."},
	}
	suite.withStub(stub)

	patchTestSettings(suite.T(), map[string]any{"initialBalance": 100})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Label: "Rent", Amount: decimal.NewFromFloat(-50)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/advice", map[string]any{
		"topic": "how can I save more?",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AdviceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Track your subscriptions, they add up.", response.Data.Text)
	assert.False(suite.T(), response.Data.Fallback)

	// The advisor sees the ledger and the current balance
	require.Len(suite.T(), stub.history, 1)
	assert.Equal(suite.T(), "Rent", stub.history[0].Label)
	assert.True(suite.T(), stub.balance.Equal(decimal.NewFromFloat(50)), "balance is %s", stub.balance)
}

func (suite *TestSuiteStandard) TestAdviceFallback() {
	// Without a configured assistant, advice degrades to the fallback message
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/advice", map[string]any{
		"topic": "what should I do?",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AdviceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), gateway.FallbackAdvice, response.Data.Text)
	assert.True(suite.T(), response.Data.Fallback)
}

func (suite *TestSuiteStandard) TestAdviceValidation() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/advice", map[string]any{"topic": " "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
