package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/agrofono/checkout/internal/app/service/store"
	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/pkg/types"
)

func newAdminRouter(gw *fakeGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAdminRoutes(r.Group("/api/v1/admin"), gw, nil)
	return r
}

func TestApiListPurchases(t *testing.T) {
	now := time.Now()
	gw := newFakeGateway()
	gw.scanPurchases = &store.ScanPurchasesResponse{
		Items: []*models.Purchase{
			{ID: "c1", DNI: "123", Price: "50.00", Status: types.PurchaseStatusCompleted, PaymentDate: &now},
			{ID: "c2", DNI: "456", Price: "80.00", Status: types.PurchaseStatusPending},
		},
		Total: 2,
	}
	r := newAdminRouter(gw)

	w := postJSON(t, r, "/api/v1/admin/list_purchases", map[string]any{"from": 0, "size": 10})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListPurchasesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.EqualValues(t, 2, resp.Total)
	require.Len(t, resp.Items, 2)
	require.Equal(t, "c1", resp.Items[0].ID)
	require.Equal(t, types.PurchaseStatusCompleted, resp.Items[0].Status)
	require.NotNil(t, resp.Items[0].PaymentDate)
}

func TestApiListSubscriptions(t *testing.T) {
	gw := newFakeGateway()
	gw.scanSubscriptions = &store.ScanSubscriptionsResponse{
		Items: []*models.Subscription{
			{ID: "l1", SubscriptionID: "s1", DNI: "123", Status: types.SubscriptionStatusApproved},
		},
		Total: 1,
	}
	r := newAdminRouter(gw)

	w := postJSON(t, r, "/api/v1/admin/list_subscriptions", map[string]any{"from": 0, "size": 10})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListSubscriptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.EqualValues(t, 1, resp.Total)
	require.Equal(t, "s1", resp.Items[0].SubscriptionID)
	require.Equal(t, types.SubscriptionStatusApproved, resp.Items[0].Status)
}
