package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrofono/checkout/internal/app/service/reconcile"
	"github.com/agrofono/checkout/pkg/logctx"
	"github.com/agrofono/checkout/pkg/response"
)

// @Summary      Create Checkout Preference
// @Description  Registers a pending purchase and creates the provider checkout preference.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body reconcile.CreateCheckoutRequest true "Purchase contact data and price"
// @Success      200  {object}  reconcile.CheckoutHandle
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /create_preference [post]
func ApiCreatePreference(e *reconcile.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reconcile.CreateCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
			return
		}
		if req.Price == "" || req.DNI == "" {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, "missing price or dni"))
			return
		}

		handle, err := e.CreateCheckout(c.Request.Context(), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, handle)
	}
}

// @Summary      Payment Webhook
// @Description  Handles provider payment notifications and completes the referenced purchase when the payment is approved.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        event body reconcile.Event true "Provider notification payload"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /payment_webhook [post]
func ApiPaymentWebhook(e *reconcile.Engine, baseLog *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var evt reconcile.Event
		if err := c.ShouldBindJSON(&evt); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
			return
		}

		log := logctx.FromGin(c, baseLog)
		log.Infow("payment_webhook_received", "type", evt.Type, "resource_id", evt.ResourceID())

		if err := e.HandlePaymentEvent(c.Request.Context(), &evt); err != nil {
			log.Warnw("payment_webhook_rejected", "err", err)
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OK("payment processed"))
	}
}

func RegisterCheckoutRoutes(r gin.IRouter, e *reconcile.Engine, log *zap.SugaredLogger) {
	r.POST("/create_preference", ApiCreatePreference(e))
	r.POST("/payment_webhook", ApiPaymentWebhook(e, log))
}
