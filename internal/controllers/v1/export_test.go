package v1_test

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	v1 "github.com/CarlosRW/Fince-AI-Budget/internal/controllers/v1"
	"github.com/CarlosRW/Fince-AI-Budget/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExport() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Label:    "Groceries",
		Category: "Food",
		Amount:   decimal.NewFromFloat(-14.5),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Label:    "Salary",
		Category: "Income",
		Amount:   decimal.NewFromFloat(500),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))

	// The file name carries the currency code and the current date
	expected := fmt.Sprintf(`attachment; filename="Report_USD_%s.xlsx"`, time.Now().UTC().Format("2006-01-02"))
	assert.Equal(suite.T(), expected, r.Header().Get("Content-Disposition"))

	// The workbook has a header row and one row per transaction, oldest first
	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	require.Nil(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 3)

	assert.Equal(suite.T(), []string{"Date", "Description", "Category", "Amount", "Type"}, rows[0])
	assert.Equal(suite.T(), "Salary", rows[1][1])
	assert.Equal(suite.T(), "Income", rows[1][4])
	assert.Equal(suite.T(), "Groceries", rows[2][1])
	assert.Equal(suite.T(), "Expense", rows[2][4])
}

func (suite *TestSuiteStandard) TestExportCurrencyCode() {
	patchTestSettings(suite.T(), map[string]any{"currencyCode": "EUR"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "Report_EUR_")
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
