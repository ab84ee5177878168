package v1

import (
	"net/http"
	"strings"

	"github.com/CarlosRW/Fince-AI-Budget/internal/gateway"
	"github.com/CarlosRW/Fince-AI-Budget/internal/httputil"
	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
)

// Assistant is the language model client used by the extraction and advice
// endpoints. It defaults to the disabled client and is replaced on startup
// when an API key is configured.
var Assistant gateway.Client = gateway.Disabled{}

// RegisterAssistantRoutes registers the routes for the assistant with
// the RouterGroup that is passed.
func RegisterAssistantRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/extract", OptionsExtract)
	r.POST("/extract", Extract)
	r.OPTIONS("/advice", OptionsAdvice)
	r.POST("/advice", Advise)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assistant
// @Success		204
// @Router			/v1/extract [options]
func OptionsExtract(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assistant
// @Success		204
// @Router			/v1/advice [options]
func OptionsAdvice(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Extract transactions
// @Description	Sends free-form text to the assistant and records the transactions it finds. When the assistant fails or finds nothing usable, the response has "failed" set and no transactions are created.
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExtractResponse
// @Success		200		{object}	ExtractResponse
// @Failure		400		{object}	ExtractResponse
// @Failure		500		{object}	ExtractResponse
// @Param			request	body		ExtractRequest	true	"Text to extract transactions from"
// @Router			/v1/extract [post]
func Extract(c *gin.Context) {
	var request ExtractRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtractResponse{
			Error: &e,
		})
		return
	}

	if strings.TrimSpace(request.Text) == "" {
		e := errTextNotSet.Error()
		c.JSON(http.StatusBadRequest, ExtractResponse{
			Error: &e,
		})
		return
	}

	result := Assistant.Extract(c.Request.Context(), request.Text)
	if result.Failed {
		c.JSON(http.StatusOK, ExtractResponse{
			Data:   []TransactionResponse{},
			Failed: true,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExtractResponse{Data: []TransactionResponse{}}

	for _, entry := range result.Entries {
		transaction := models.Transaction{
			Label:    entry.Label,
			Category: entry.Category,
			Amount:   entry.Amount,
		}

		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get advice
// @Description	Asks the advisor a budgeting question. The advisor sees the current balance and the most recent ledger entries. When it cannot be reached, a fixed fallback message is returned with "fallback" set.
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200		{object}	AdviceResponse
// @Failure		400		{object}	AdviceResponse
// @Failure		500		{object}	AdviceResponse
// @Param			request	body		AdviceRequest	true	"The question to ask"
// @Router			/v1/advice [post]
func Advise(c *gin.Context) {
	var request AdviceRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdviceResponse{
			Error: &e,
		})
		return
	}

	if strings.TrimSpace(request.Topic) == "" {
		e := errTopicNotSet.Error()
		c.JSON(http.StatusBadRequest, AdviceResponse{
			Error: &e,
		})
		return
	}

	balance, err := models.Balance(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdviceResponse{
			Error: &e,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdviceResponse{
			Error: &e,
		})
		return
	}

	history := make([]gateway.HistoryEntry, 0, len(transactions))
	for _, transaction := range transactions {
		history = append(history, gateway.HistoryEntry{
			Label:    transaction.Label,
			Category: transaction.Category,
			Amount:   transaction.Amount,
			Date:     transaction.Date,
		})
	}

	result := Assistant.Advise(c.Request.Context(), history, balance, request.Topic)

	c.JSON(http.StatusOK, AdviceResponse{
		Data: &Advice{
			Text:     result.Text,
			Fallback: result.Fallback,
		},
	})
}
