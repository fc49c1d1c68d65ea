package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/agrofono/checkout/internal/app/service/store"
	"github.com/agrofono/checkout/internal/app/service/webhooklog"
	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/internal/platform/mail"
	"github.com/agrofono/checkout/internal/platform/mercadopago"
	"github.com/agrofono/checkout/pkg/config"
	"github.com/agrofono/checkout/pkg/tool"
	"github.com/agrofono/checkout/pkg/types"
)

var (
	// ErrValidation reports a missing or malformed request field.
	ErrValidation = errors.New("invalid request")
	// ErrBadEvent reports a webhook payload this engine does not handle.
	ErrBadEvent = errors.New("invalid webhook event")
	// ErrUnapproved reports a provider payment that is not (yet) approved.
	ErrUnapproved = errors.New("payment not approved")
)

// Provider is the slice of the payment provider API the engine consumes.
// *mercadopago.Client implements it.
type Provider interface {
	CreatePreference(ctx context.Context, req *mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
	CreatePreapproval(ctx context.Context, req *mercadopago.PreapprovalRequest) (*mercadopago.Preapproval, error)
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, error)
	GetPreapproval(ctx context.Context, subscriptionID string) (*mercadopago.Preapproval, error)
}

// Engine drives purchases and subscriptions from pending to their terminal
// status, consuming webhook events and the polling fallback. It holds no
// state of its own; every decision derives from the stored record plus the
// authoritative provider status.
type Engine struct {
	cfg      *config.Config
	store    store.Gateway
	provider Provider
	mailer   mail.Mailer
	whLog    *webhooklog.Service
	log      *zap.SugaredLogger

	approveLocks keyedMutex
}

func NewEngine(cfg *config.Config, gw store.Gateway, provider Provider, mailer mail.Mailer, whLog *webhooklog.Service, log *zap.SugaredLogger) *Engine {
	return &Engine{
		cfg:      cfg,
		store:    gw,
		provider: provider,
		mailer:   mailer,
		whLog:    whLog,
		log:      log,
	}
}

type CreateCheckoutRequest struct {
	Email    string `json:"email"`
	DNI      string `json:"dni"`
	Price    string `json:"price"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// CheckoutHandle is returned to the caller so the frontend can redirect to
// the provider-hosted checkout page.
type CheckoutHandle struct {
	ConsultaID string                  `json:"consultaId"`
	Preference *mercadopago.Preference `json:"preference"`
}

// CreateCheckout persists a pending purchase and creates the provider-side
// checkout. The store write happens before the provider call so a record
// exists by the time the first webhook can arrive.
func (e *Engine) CreateCheckout(ctx context.Context, req *CreateCheckoutRequest) (*CheckoutHandle, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	consultaID := tool.GenerateUUIDV7()
	purchase := &models.Purchase{
		ID:       consultaID,
		Email:    req.Email,
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		DNI:      req.DNI,
		Price:    req.Price,
		Status:   types.PurchaseStatusPending,
	}
	if err := e.store.CreatePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	pref, err := e.provider.CreatePreference(ctx, &mercadopago.PreferenceRequest{
		ItemID:            consultaID,
		Title:             e.cfg.MercadoPago.PurchaseTitle,
		UnitPrice:         price,
		ExternalReference: consultaID,
		BackURL:           e.cfg.MercadoPago.BackURL,
		NotificationURL:   e.cfg.MercadoPago.PaymentNotificationURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}

	e.log.Infow("checkout_created", "consulta_id", consultaID, "preference_id", pref.ID)
	return &CheckoutHandle{ConsultaID: consultaID, Preference: pref}, nil
}

type CreateSubscriptionRequest struct {
	Email    string `json:"email"`
	DNI      string `json:"dni"`
	Price    string `json:"price"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// SubscriptionHandle carries the provider subscription id and the page the
// payer must visit to authorize the recurring charge.
type SubscriptionHandle struct {
	SubscriptionID string `json:"subscription_id"`
	InitPoint      string `json:"init_point"`
}

// CreateSubscription creates the provider-side preapproval, persists the
// pending subscription record, and kicks off the polling fallback detached
// from the request.
func (e *Engine) CreateSubscription(ctx context.Context, req *CreateSubscriptionRequest) (*SubscriptionHandle, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	pre, err := e.provider.CreatePreapproval(ctx, &mercadopago.PreapprovalRequest{
		Reason:            e.cfg.MercadoPago.SubscriptionReason,
		ExternalReference: req.DNI,
		Amount:            price,
		CurrencyID:        e.cfg.MercadoPago.CurrencyID,
		PayerEmail:        req.Email,
		BackURL:           e.cfg.MercadoPago.BackURL,
		NotificationURL:   e.cfg.MercadoPago.SubNotificationURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create preapproval: %w", err)
	}

	sub := &models.Subscription{
		ID:             tool.GenerateUUIDV7(),
		SubscriptionID: pre.ID,
		Email:          req.Email,
		Nombre:         req.Nombre,
		Telefono:       req.Telefono,
		DNI:            req.DNI,
		Price:          req.Price,
		Status:         types.SubscriptionStatusPending,
	}
	if err := e.store.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	e.log.Infow("subscription_created", "sub_id", sub.ID, "subscription_id", pre.ID)

	// Polling fallback runs detached; webhook delivery may beat it, in
	// which case the poll observes the already-approved record and stops.
	go e.Poll(context.Background(), pre.ID)

	return &SubscriptionHandle{SubscriptionID: pre.ID, InitPoint: pre.InitPoint}, nil
}

func parsePrice(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: missing price", ErrValidation)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		return 0, fmt.Errorf("%w: invalid price %q", ErrValidation, raw)
	}
	return price, nil
}
