package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	cfgpkg "github.com/agrofono/checkout/pkg/config"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(&cfgpkg.Config{
		MercadoPago: cfgpkg.MercadoPagoConfig{
			BaseURL:                 srv.URL,
			AccessToken:             "pay-token",
			SubscriptionAccessToken: "sub-token",
		},
	})
}

func TestCreatePreference(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/checkout/preferences", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pref-1","init_point":"https://mp/init"}`))
	}))
	defer srv.Close()

	pref, err := newTestClient(srv).CreatePreference(context.Background(), &PreferenceRequest{
		ItemID:            "c1",
		Title:             "Consulta",
		UnitPrice:         50,
		ExternalReference: "c1",
		BackURL:           "https://back",
		NotificationURL:   "https://notify",
	})
	require.NoError(t, err)
	require.Equal(t, "pref-1", pref.ID)
	require.Equal(t, "https://mp/init", pref.InitPoint)

	require.Equal(t, "Bearer pay-token", gotAuth)
	require.Equal(t, "c1", gotBody["external_reference"])
	require.Equal(t, "approved", gotBody["auto_return"])
	items, ok := gotBody["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestCreatePreapproval_UsesSubscriptionToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/preapproval", r.URL.Path)
		require.Equal(t, "Bearer sub-token", r.Header.Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "pending", body["status"])
		_, _ = w.Write([]byte(`{"id":"sub-1","status":"pending","init_point":"https://mp/sub"}`))
	}))
	defer srv.Close()

	pre, err := newTestClient(srv).CreatePreapproval(context.Background(), &PreapprovalRequest{
		Reason:     "Suscripción",
		Amount:     100,
		CurrencyID: "ARS",
		PayerEmail: "a@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "sub-1", pre.ID)
	require.Equal(t, "https://mp/sub", pre.InitPoint)
}

func TestGetPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payments/p1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":123,"status":"approved","external_reference":"c1","payer":{"email":"a@example.com"}}`))
	}))
	defer srv.Close()

	p, err := newTestClient(srv).GetPayment(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "approved", p.Status)
	require.Equal(t, "c1", p.ExternalReference)
	require.Equal(t, "a@example.com", p.Payer.Email)
	require.Equal(t, "123", p.ID.String())
}

func TestGetPayment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GetPayment(context.Background(), "missing")
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestGetPreapproval_ServerErrorIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GetPreapproval(context.Background(), "sub-1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Contains(t, apiErr.Body, "boom")
}

func TestCreatePreference_MissingIDRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).CreatePreference(context.Background(), &PreferenceRequest{ItemID: "c1"})
	require.Error(t, err)
}
