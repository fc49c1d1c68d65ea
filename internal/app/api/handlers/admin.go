package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/agrofono/checkout/internal/app/service/statistics"
	"github.com/agrofono/checkout/internal/app/service/store"
	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/pkg/response"
	"github.com/agrofono/checkout/pkg/types"
)

type PurchaseItem struct {
	ID          string               `json:"id"`
	Email       string               `json:"email"`
	Nombre      string               `json:"nombre"`
	Telefono    string               `json:"telefono"`
	DNI         string               `json:"dni"`
	Price       string               `json:"price"`
	Status      types.PurchaseStatus `json:"status"`
	PaymentDate *time.Time           `json:"payment_date"`
	PayerEmail  *string              `json:"payer_email"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type SubscriptionItem struct {
	ID             string                   `json:"sub_id"`
	SubscriptionID string                   `json:"subscription_id"`
	Email          string                   `json:"email"`
	Nombre         string                   `json:"nombre"`
	Telefono       string                   `json:"telefono"`
	DNI            string                   `json:"dni"`
	Price          string                   `json:"price"`
	Status         types.SubscriptionStatus `json:"status"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

type ListPurchasesResponse struct {
	Items []*PurchaseItem `json:"items"`
	Total int64           `json:"total"`
}

type ListSubscriptionsResponse struct {
	Items []*SubscriptionItem `json:"items"`
	Total int64               `json:"total"`
}

func toPurchaseItem(m *models.Purchase) *PurchaseItem {
	return &PurchaseItem{
		ID:          m.ID,
		Email:       m.Email,
		Nombre:      m.Nombre,
		Telefono:    m.Telefono,
		DNI:         m.DNI,
		Price:       m.Price,
		Status:      m.Status,
		PaymentDate: m.PaymentDate,
		PayerEmail:  m.PayerEmail,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSubscriptionItem(m *models.Subscription) *SubscriptionItem {
	return &SubscriptionItem{
		ID:             m.ID,
		SubscriptionID: m.SubscriptionID,
		Email:          m.Email,
		Nombre:         m.Nombre,
		Telefono:       m.Telefono,
		DNI:            m.DNI,
		Price:          m.Price,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// @Summary      List Purchases (Admin)
// @Description  Retrieves a paginated and filterable list of purchases.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body store.ScanRequest true "List request with filters, pagination, and sorting"
// @Success      200  {object}  handlers.ListPurchasesResponse
// @Router       /api/v1/admin/list_purchases [post]
func ApiListPurchases(gw store.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req store.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
			return
		}
		res, err := gw.ScanPurchases(c.Request.Context(), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		items := lo.Map(res.Items, func(it *models.Purchase, _ int) *PurchaseItem { return toPurchaseItem(it) })
		c.JSON(http.StatusOK, &ListPurchasesResponse{Items: items, Total: res.Total})
	}
}

// @Summary      List Subscriptions (Admin)
// @Description  Retrieves a paginated and filterable list of subscriptions.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body store.ScanRequest true "List request with filters, pagination, and sorting"
// @Success      200  {object}  handlers.ListSubscriptionsResponse
// @Router       /api/v1/admin/list_subscriptions [post]
func ApiListSubscriptions(gw store.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req store.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
			return
		}
		res, err := gw.ScanSubscriptions(c.Request.Context(), &req)
		if err != nil {
			writeError(c, err)
			return
		}
		items := lo.Map(res.Items, func(it *models.Subscription, _ int) *SubscriptionItem { return toSubscriptionItem(it) })
		c.JSON(http.StatusOK, &ListSubscriptionsResponse{Items: items, Total: res.Total})
	}
}

// @Summary      Get Daily Statistics (Admin)
// @Description  Retrieves per-day purchase and subscription counters over an inclusive date range.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body statistics.DailyStatisticRequest true "Inclusive date range, YYYY-MM-DD"
// @Success      200  {object}  statistics.DailyStatisticResponse
// @Router       /api/v1/admin/get_daily_statistics [post]
func ApiGetDailyStatistics(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statistics.DailyStatisticRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
			return
		}
		res, err := svc.GetDailyStatistics(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, statistics.ErrInvalidRange) {
				c.JSON(http.StatusBadRequest, response.NewError(response.ErrorKindValidation, err.Error()))
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func RegisterAdminRoutes(r gin.IRouter, gw store.Gateway, stats *statistics.Service) {
	r.POST("/list_purchases", ApiListPurchases(gw))
	r.POST("/list_subscriptions", ApiListSubscriptions(gw))
	r.POST("/get_daily_statistics", ApiGetDailyStatistics(stats))
}
