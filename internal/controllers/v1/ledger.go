package v1

import (
	"net/http"

	"github.com/CarlosRW/Fince-AI-Budget/internal/httputil"
	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
)

// chartLabelLength is the maximum length of a chart point label. Longer
// transaction labels are shortened so that chart axes stay readable.
const chartLabelLength = 10

// RegisterLedgerRoutes registers the read-only ledger views with
// the RouterGroup that is passed.
func RegisterLedgerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/balance", OptionsBalance)
	r.GET("/balance", GetBalance)
	r.OPTIONS("/activity", OptionsActivity)
	r.GET("/activity", GetActivity)
	r.OPTIONS("/chart", OptionsChart)
	r.GET("/chart", GetChart)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/balance [options]
func OptionsBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/activity [options]
func OptionsActivity(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/chart [options]
func OptionsChart(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get balance
// @Description	Returns the current balance: the initial balance plus the sum of all transactions
// @Tags			Ledger
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		500	{object}	BalanceResponse
// @Router			/v1/balance [get]
func GetBalance(c *gin.Context) {
	balance, err := models.Balance(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Data: &Balance{Balance: balance},
	})
}

// @Summary		Get activity
// @Description	Returns all transactions grouped by calendar day, most recent day first
// @Tags			Ledger
// @Produce		json
// @Success		200	{object}	ActivityResponse
// @Failure		500	{object}	ActivityResponse
// @Router			/v1/activity [get]
func GetActivity(c *gin.Context) {
	groups, err := models.GroupedByDate(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActivityResponse{
			Error: &e,
		})
		return
	}

	data := make([]ActivityGroup, 0, len(groups))
	for _, group := range groups {
		data = append(data, newActivityGroup(c, group))
	}

	c.JSON(http.StatusOK, ActivityResponse{
		Data: data,
	})
}

// @Summary		Get chart
// @Description	Returns the running balance over time, starting with a synthetic point holding the initial balance
// @Tags			Ledger
// @Produce		json
// @Success		200	{object}	ChartResponse
// @Failure		500	{object}	ChartResponse
// @Router			/v1/chart [get]
func GetChart(c *gin.Context) {
	series, err := models.RunningSeries(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &e,
		})
		return
	}

	data := make([]ChartPoint, 0, len(series))
	for _, point := range series {
		p := ChartPoint{
			Label:   shortenLabel(point.Label),
			Balance: point.Balance,
		}
		if !point.Date.IsZero() {
			date := point.Date
			p.Date = &date
		}
		data = append(data, p)
	}

	c.JSON(http.StatusOK, ChartResponse{
		Data: data,
	})
}

// shortenLabel cuts a label after chartLabelLength characters. Counting
// runes keeps multi-byte labels intact.
func shortenLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= chartLabelLength {
		return label
	}

	return string(runes[:chartLabelLength]) + "…"
}
