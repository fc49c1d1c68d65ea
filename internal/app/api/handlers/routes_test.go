package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := zap.NewNop().Sugar()
	RegisterCheckoutRoutes(r, nil, log)
	RegisterSubscriptionRoutes(r, nil, log)
	RegisterHealthRoutes(r)
	RegisterAdminRoutes(r.Group("/api/v1/admin"), nil, nil)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("POST /create_preference"))
	require.True(t, contains("POST /payment_webhook"))
	require.True(t, contains("POST /create_subscription"))
	require.True(t, contains("POST /start_subscription_check"))
	require.True(t, contains("POST /sub_success"))
	require.True(t, contains("GET /healthz"))
	require.True(t, contains("POST /api/v1/admin/list_purchases"))
	require.True(t, contains("POST /api/v1/admin/list_subscriptions"))
	require.True(t, contains("POST /api/v1/admin/get_daily_statistics"))
}
