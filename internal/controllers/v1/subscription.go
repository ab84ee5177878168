package v1

import (
	"net/http"

	"github.com/CarlosRW/Fince-AI-Budget/internal/httputil"
	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSubscriptionRoutes registers the routes for subscriptions with
// the RouterGroup that is passed.
func RegisterSubscriptionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSubscriptions)
		r.GET("", GetSubscriptions)
		r.POST("", CreateSubscriptions)
	}
	{
		r.OPTIONS("/:id", OptionsSubscriptionDetail)
		r.GET("/:id", GetSubscription)
		r.PATCH("/:id", UpdateSubscription)
		r.DELETE("/:id", DeleteSubscription)
	}
	{
		r.OPTIONS("/:id/pay", OptionsSubscriptionPay)
		r.POST("/:id/pay", PaySubscription)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscriptions [options]
func OptionsSubscriptions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [options]
func OptionsSubscriptionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Subscription{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id}/pay [options]
func OptionsSubscriptionPay(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Subscription{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create subscriptions
// @Description	Creates new subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		201				{object}	SubscriptionCreateResponse
// @Failure		400				{object}	SubscriptionCreateResponse
// @Failure		500				{object}	SubscriptionCreateResponse
// @Param			subscriptions	body		[]SubscriptionEditable	true	"Subscriptions"
// @Router			/v1/subscriptions [post]
func CreateSubscriptions(c *gin.Context) {
	var subscriptions []SubscriptionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &subscriptions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SubscriptionCreateResponse{}

	for _, create := range subscriptions {
		subscription := create.model()
		err = models.DB.Create(&subscription).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newSubscription(c, subscription)
		r.Data = append(r.Data, SubscriptionResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get subscriptions
// @Description	Returns a list of all subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionListResponse
// @Failure		500	{object}	SubscriptionListResponse
// @Router			/v1/subscriptions [get]
func GetSubscriptions(c *gin.Context) {
	var subscriptions []models.Subscription
	err := models.DB.Order("subscriptions.name ASC").Find(&subscriptions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		data = append(data, newSubscription(c, subscription))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{
		Data: data,
	})
}

// @Summary		Get subscription
// @Description	Returns a specific subscription
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [get]
func GetSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &apiResource})
}

// @Summary		Update subscription
// @Description	Updates an existing subscription. Only values to be updated need to be specified.
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		200				{object}	SubscriptionResponse
// @Failure		400				{object}	SubscriptionResponse
// @Failure		404				{object}	SubscriptionResponse
// @Failure		500				{object}	SubscriptionResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subscription	body		SubscriptionEditable	true	"Subscription"
// @Router			/v1/subscriptions/{id} [patch]
func UpdateSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SubscriptionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data SubscriptionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&subscription).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSubscription(c, subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &apiResource})
}

// @Summary		Delete subscription
// @Description	Deletes a subscription. Payments already booked stay in the ledger.
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [delete]
func DeleteSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&subscription).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Pay subscription
// @Description	Books one billing cycle of the subscription as an expense on the current day
// @Tags			Subscriptions
// @Produce		json
// @Success		201	{object}	SubscriptionPayResponse
// @Failure		400	{object}	SubscriptionPayResponse
// @Failure		404	{object}	SubscriptionPayResponse
// @Failure		500	{object}	SubscriptionPayResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id}/pay [post]
func PaySubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionPayResponse{
			Error: &e,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionPayResponse{
			Error: &e,
		})
		return
	}

	transaction, err := subscription.Pay(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionPayResponse{
			Error: &e,
		})
		return
	}

	subscriptionResource := newSubscription(c, subscription)
	transactionResource := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, SubscriptionPayResponse{
		Data:        &subscriptionResource,
		Transaction: &transactionResource,
	})
}
