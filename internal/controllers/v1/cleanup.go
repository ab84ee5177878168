package v1

import (
	"net/http"

	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
)

// cleanupConfirmation guards the cleanup endpoint. It deletes everything,
// so the client has to spell out that this is wanted.
const cleanupConfirmation = "yes-please-delete-everything"

// @Summary		Delete everything
// @Description	Permanently deletes all transactions, goals and subscriptions and resets the settings to their defaults
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != cleanupConfirmation {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	resources := []any{
		models.Transaction{},
		models.Goal{},
		models.Subscription{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	// The settings singleton survives the cleanup, but goes back to
	// its defaults
	err = models.ResetSettings(tx)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		tx.Rollback()
		return
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
