package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrofono/checkout/internal/app/service/reconcile"
	"github.com/agrofono/checkout/pkg/logctx"
	"github.com/agrofono/checkout/pkg/response"
)

type createSubscriptionResp struct {
	Message   string `json:"message"`
	InitPoint string `json:"init_point"`
}

// @Summary      Create Subscription
// @Description  Creates a provider preapproval and registers a pending subscription. Responds with the authorization link the payer must visit.
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Param        request body reconcile.CreateSubscriptionRequest true "Subscriber contact data and price"
// @Success      200  {object}  handlers.createSubscriptionResp
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /create_subscription [post]
func ApiCreateSubscription(e *reconcile.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reconcile.CreateSubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
			return
		}
		if req.Email == "" || req.DNI == "" || req.Price == "" || req.Nombre == "" || req.Telefono == "" {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, "missing required field"))
			return
		}

		handle, err := e.CreateSubscription(c.Request.Context(), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, createSubscriptionResp{
			Message:   "subscription created",
			InitPoint: handle.InitPoint,
		})
	}
}

type startSubscriptionCheckReq struct {
	SubscriptionID string `json:"subscriptionId"`
}

// @Summary      Start Subscription Check
// @Description  Blocks while polling the provider until the subscription is authorized or the attempts run out.
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Param        request body handlers.startSubscriptionCheckReq true "Provider subscription id"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.ErrorBody
// @Failure      408  {object}  response.ErrorBody
// @Router       /start_subscription_check [post]
func ApiStartSubscriptionCheck(e *reconcile.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req startSubscriptionCheckReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
			return
		}
		if req.SubscriptionID == "" {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, "missing subscriptionId"))
			return
		}

		if !e.Poll(c.Request.Context(), req.SubscriptionID) {
			c.JSON(http.StatusRequestTimeout, response.NewError(response.ErrorKindTimeout, "subscription not authorized in time"))
			return
		}
		c.JSON(http.StatusOK, response.OK("subscription authorized"))
	}
}

// @Summary      Subscription Webhook
// @Description  Handles provider preapproval notifications; an authorized subscription is approved and its account provisioned exactly once.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        event body reconcile.Event true "Provider notification payload"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /sub_success [post]
func ApiSubscriptionWebhook(e *reconcile.Engine, baseLog *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var evt reconcile.Event
		if err := c.ShouldBindJSON(&evt); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
			return
		}

		log := logctx.FromGin(c, baseLog)
		log.Infow("subscription_webhook_received", "type", evt.Type, "resource_id", evt.ResourceID())

		if err := e.HandleSubscriptionEvent(c.Request.Context(), &evt); err != nil {
			log.Warnw("subscription_webhook_rejected", "err", err)
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OK("notification processed"))
	}
}

func RegisterSubscriptionRoutes(r gin.IRouter, e *reconcile.Engine, log *zap.SugaredLogger) {
	r.POST("/create_subscription", ApiCreateSubscription(e))
	r.POST("/start_subscription_check", ApiStartSubscriptionCheck(e))
	r.POST("/sub_success", ApiSubscriptionWebhook(e, log))
}
