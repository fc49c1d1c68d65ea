package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agrofono/checkout/internal/app/service/reconcile"
	"github.com/agrofono/checkout/internal/app/service/store"
	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/internal/platform/mercadopago"
	"github.com/agrofono/checkout/pkg/config"
	"github.com/agrofono/checkout/pkg/types"
)

// fakeGateway backs handler tests with an in-memory store.Gateway.
type fakeGateway struct {
	purchases     map[string]*models.Purchase
	subscriptions map[string]*models.Subscription
	accounts      map[string]*models.Account

	scanPurchases     *store.ScanPurchasesResponse
	scanSubscriptions *store.ScanSubscriptionsResponse
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		purchases:     map[string]*models.Purchase{},
		subscriptions: map[string]*models.Subscription{},
		accounts:      map[string]*models.Account{},
	}
}

func (f *fakeGateway) CreatePurchase(_ context.Context, p *models.Purchase) error {
	f.purchases[p.ID] = p
	return nil
}

func (f *fakeGateway) GetPurchase(_ context.Context, id string) (*models.Purchase, error) {
	p, ok := f.purchases[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (f *fakeGateway) CompletePurchase(_ context.Context, id string, paymentDate time.Time, payerEmail *string) error {
	p, ok := f.purchases[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Status = types.PurchaseStatusCompleted
	p.PayerEmail = payerEmail
	if p.PaymentDate == nil {
		p.PaymentDate = &paymentDate
	}
	return nil
}

func (f *fakeGateway) CreateSubscription(_ context.Context, s *models.Subscription) error {
	f.subscriptions[s.SubscriptionID] = s
	return nil
}

func (f *fakeGateway) GetSubscription(_ context.Context, _ string) (*models.Subscription, error) {
	panic("not used")
}

func (f *fakeGateway) FindSubscriptionByProviderID(_ context.Context, subscriptionID string) (*models.Subscription, error) {
	s, ok := f.subscriptions[subscriptionID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (f *fakeGateway) ApproveSubscription(_ context.Context, subscriptionID string) (bool, error) {
	s, ok := f.subscriptions[subscriptionID]
	if !ok || s.Status != types.SubscriptionStatusPending {
		return false, nil
	}
	s.Status = types.SubscriptionStatusApproved
	return true, nil
}

func (f *fakeGateway) CreateAccount(_ context.Context, a *models.Account) (bool, error) {
	if _, ok := f.accounts[a.SubscriptionID]; ok {
		return false, nil
	}
	f.accounts[a.SubscriptionID] = a
	return true, nil
}

func (f *fakeGateway) FindAccountBySubscriptionID(_ context.Context, _ string) (*models.Account, error) {
	panic("not used")
}

func (f *fakeGateway) ScanPurchases(_ context.Context, _ *store.ScanRequest) (*store.ScanPurchasesResponse, error) {
	if f.scanPurchases == nil {
		panic("not used")
	}
	return f.scanPurchases, nil
}

func (f *fakeGateway) ScanSubscriptions(_ context.Context, _ *store.ScanRequest) (*store.ScanSubscriptionsResponse, error) {
	if f.scanSubscriptions == nil {
		panic("not used")
	}
	return f.scanSubscriptions, nil
}

// stubProvider serves canned provider responses.
type stubProvider struct {
	payment           *mercadopago.Payment
	preapprovalStatus string
}

func (s *stubProvider) CreatePreference(_ context.Context, req *mercadopago.PreferenceRequest) (*mercadopago.Preference, error) {
	return &mercadopago.Preference{ID: "pref-1", InitPoint: "https://mp/init"}, nil
}

func (s *stubProvider) CreatePreapproval(_ context.Context, _ *mercadopago.PreapprovalRequest) (*mercadopago.Preapproval, error) {
	return &mercadopago.Preapproval{ID: "sub-1", Status: "pending", InitPoint: "https://mp/sub"}, nil
}

func (s *stubProvider) GetPayment(_ context.Context, _ string) (*mercadopago.Payment, error) {
	return s.payment, nil
}

func (s *stubProvider) GetPreapproval(_ context.Context, id string) (*mercadopago.Preapproval, error) {
	return &mercadopago.Preapproval{ID: id, Status: s.preapprovalStatus}, nil
}

func testEngine(gw *fakeGateway, sp *stubProvider) *reconcile.Engine {
	cfg := &config.Config{
		MercadoPago: config.MercadoPagoConfig{PurchaseTitle: "Consulta", CurrencyID: "ARS"},
		Polling:     config.PollingConfig{MaxRetries: 2, Interval: time.Millisecond},
	}
	return reconcile.NewEngine(cfg, gw, sp, nil, nil, zap.NewNop().Sugar())
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter(gw *fakeGateway, sp *stubProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := zap.NewNop().Sugar()
	e := testEngine(gw, sp)
	RegisterCheckoutRoutes(r, e, log)
	RegisterSubscriptionRoutes(r, e, log)
	return r
}

func TestApiCreatePreference_MissingPriceOrDNI(t *testing.T) {
	r := newTestRouter(newFakeGateway(), &stubProvider{})

	w := postJSON(t, r, "/create_preference", map[string]string{"dni": "123"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "validation_error")

	w = postJSON(t, r, "/create_preference", map[string]string{"price": "50.00"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApiCreatePreference_CreatesPendingPurchase(t *testing.T) {
	gw := newFakeGateway()
	r := newTestRouter(gw, &stubProvider{})

	w := postJSON(t, r, "/create_preference", map[string]string{"dni": "123", "price": "50.00"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ConsultaID string `json:"consultaId"`
		Preference struct {
			ID        string `json:"id"`
			InitPoint string `json:"init_point"`
		} `json:"preference"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ConsultaID)
	require.Equal(t, "pref-1", resp.Preference.ID)
	require.Equal(t, "https://mp/init", resp.Preference.InitPoint)

	p, ok := gw.purchases[resp.ConsultaID]
	require.True(t, ok)
	require.Equal(t, types.PurchaseStatusPending, p.Status)
}

func TestApiPaymentWebhook_ApprovedPaymentCompletesPurchase(t *testing.T) {
	gw := newFakeGateway()
	gw.purchases["c1"] = &models.Purchase{ID: "c1", Status: types.PurchaseStatusPending}
	payment := &mercadopago.Payment{Status: "approved", ExternalReference: "c1"}
	payment.Payer.Email = "payer@example.com"
	r := newTestRouter(gw, &stubProvider{payment: payment})

	w := postJSON(t, r, "/payment_webhook", map[string]any{"type": "payment", "data": map[string]any{"id": "p1"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, types.PurchaseStatusCompleted, gw.purchases["c1"].Status)
}

func TestApiPaymentWebhook_WrongTypeIsRejected(t *testing.T) {
	gw := newFakeGateway()
	gw.purchases["c1"] = &models.Purchase{ID: "c1", Status: types.PurchaseStatusPending}
	r := newTestRouter(gw, &stubProvider{})

	w := postJSON(t, r, "/payment_webhook", map[string]any{"type": "merchant_order", "data": map[string]any{"id": "p1"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, types.PurchaseStatusPending, gw.purchases["c1"].Status)
}

func TestApiPaymentWebhook_UnknownReferenceIs404(t *testing.T) {
	payment := &mercadopago.Payment{Status: "approved", ExternalReference: "missing"}
	r := newTestRouter(newFakeGateway(), &stubProvider{payment: payment})

	w := postJSON(t, r, "/payment_webhook", map[string]any{"type": "payment", "data": map[string]any{"id": "p1"}})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "not_found")
}

func TestApiPaymentWebhook_UnapprovedIs400(t *testing.T) {
	payment := &mercadopago.Payment{Status: "in_process", ExternalReference: "c1"}
	r := newTestRouter(newFakeGateway(), &stubProvider{payment: payment})

	w := postJSON(t, r, "/payment_webhook", map[string]any{"type": "payment", "data": map[string]any{"id": "p1"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "unapproved")
}
