package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CarlosRW/Fince-AI-Budget/internal/httputil"
	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Transactions"

// RegisterExportRoutes registers the export route with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export transactions
// @Description	Returns all transactions as an xlsx workbook, oldest first. The file name carries the currency code and the current date.
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	settings, err := models.GetSettings(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.
		Order("datetime(transactions.date) ASC, datetime(transactions.created_at) ASC").
		Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Error().Err(err).Msg("closing export workbook")
		}
	}()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Description", "Category", "Amount", "Type"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		_ = f.SetCellStyle(exportSheet, "A1", "E1", headerStyle)
	}

	for i, transaction := range transactions {
		row := i + 2

		date := ""
		if !transaction.Date.IsZero() {
			date = transaction.Date.Format("02/01/2006")
		}

		kind := "Expense"
		if transaction.Income() {
			kind = "Income"
		}

		amount, _ := transaction.Amount.Float64()

		values := []interface{}{date, transaction.Label, transaction.Category, amount, kind}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			_ = f.SetCellValue(exportSheet, cell, value)
		}
	}

	_ = f.SetColWidth(exportSheet, "A", "E", 18)

	filename := fmt.Sprintf("Report_%s_%s.xlsx", settings.CurrencyCode, time.Now().UTC().Format("2006-01-02"))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	err = f.Write(c.Writer)
	if err != nil {
		log.Error().Err(err).Msg("writing export workbook")
	}
}
