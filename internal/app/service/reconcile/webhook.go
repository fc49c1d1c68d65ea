package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/pkg/logctx"
	"github.com/agrofono/checkout/pkg/metrics"
	"github.com/agrofono/checkout/pkg/types"
)

// resourceID tolerates both serializations the provider uses for data.id:
// a bare number for payments and a string for preapprovals.
type resourceID string

func (r *resourceID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = resourceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = resourceID(n.String())
	return nil
}

// Event is the provider webhook payload. data.id identifies a payment for
// payment events and a preapproval for subscription events.
type Event struct {
	Type string `json:"type"`
	Data struct {
		ID resourceID `json:"id"`
	} `json:"data"`
}

func (e *Event) ResourceID() string { return string(e.Data.ID) }

// HandlePaymentEvent is the purchase confirmation path. It trusts nothing
// in the event beyond the payment id: the authoritative status and the
// external reference come from a fresh provider fetch.
func (e *Engine) HandlePaymentEvent(ctx context.Context, evt *Event) (resErr error) {
	defer e.auditEvent(ctx, evt, &resErr)()

	if evt == nil || evt.ResourceID() == "" {
		return fmt.Errorf("%w: missing data.id", ErrBadEvent)
	}
	if evt.Type != types.EventTypePayment {
		return fmt.Errorf("%w: unhandled notification type %q", ErrBadEvent, evt.Type)
	}

	// Fetch failures are not retried here; the provider redelivers the
	// webhook on non-2xx responses.
	payment, err := e.provider.GetPayment(ctx, evt.ResourceID())
	if err != nil {
		return fmt.Errorf("failed to fetch payment info: %w", err)
	}

	if payment.Status != types.PaymentStatusApproved {
		return fmt.Errorf("%w: payment %s status is %q", ErrUnapproved, evt.ResourceID(), payment.Status)
	}
	if payment.ExternalReference == "" {
		return fmt.Errorf("%w: no external reference in payment info", ErrBadEvent)
	}

	purchase, err := e.store.GetPurchase(ctx, payment.ExternalReference)
	if err != nil {
		return err
	}

	var payerEmail *string
	if payment.Payer.Email != "" {
		email := payment.Payer.Email
		payerEmail = &email
	}
	// Not guarded by a pending check: the written values derive from the
	// provider record, so a redelivered webhook re-applies them harmlessly.
	if err := e.store.CompletePurchase(ctx, purchase.ID, time.Now(), payerEmail); err != nil {
		return err
	}

	logctx.FromCtx(ctx, e.log).Infow("purchase_completed", "consulta_id", purchase.ID, "payment_id", evt.ResourceID())
	return nil
}

// HandleSubscriptionEvent is the webhook entry of the subscription path.
// data.id is the provider subscription id; correctness is delegated to the
// shared approval handler.
func (e *Engine) HandleSubscriptionEvent(ctx context.Context, evt *Event) (resErr error) {
	defer e.auditEvent(ctx, evt, &resErr)()

	if evt == nil || evt.ResourceID() == "" {
		return fmt.Errorf("%w: missing data.id", ErrBadEvent)
	}
	if evt.Type != types.EventTypeSubscriptionPreapproval {
		return fmt.Errorf("%w: unhandled type %q", ErrBadEvent, evt.Type)
	}

	return e.approveSubscription(ctx, evt.ResourceID())
}

// auditEvent persists a received record immediately and a handled or
// handle_failed record when the handler returns.
func (e *Engine) auditEvent(ctx context.Context, evt *Event, resErr *error) func() {
	var eventType, resourceID string
	var data []byte
	if evt != nil {
		eventType = evt.Type
		resourceID = evt.ResourceID()
		data, _ = json.Marshal(evt)
	}
	var traceID string
	if v, ok := ctx.Value("traceID").(string); ok {
		traceID = v
	}

	if e.whLog != nil {
		e.whLog.Save(ctx, &models.WebhookLog{
			EventType:        eventType,
			ResourceID:       resourceID,
			TraceID:          traceID,
			NotificationTime: time.Now(),
			Data:             datatypes.JSON(data),
			Status:           models.WebhookLogStatusReceived,
		})
	}

	return func() {
		status := models.WebhookLogStatusHandled
		result := "ok"
		resMap := map[string]any{}
		if *resErr != nil {
			status = models.WebhookLogStatusHandleFailed
			result = "error"
			resMap["error"] = (*resErr).Error()
		}
		resBytes, _ := json.Marshal(resMap)
		resJSON := datatypes.JSON(resBytes)
		if e.whLog != nil {
			e.whLog.Save(ctx, &models.WebhookLog{
				EventType:        eventType,
				ResourceID:       resourceID,
				TraceID:          traceID,
				NotificationTime: time.Now(),
				Data:             datatypes.JSON(data),
				Result:           &resJSON,
				Status:           status,
			})
		}
		metrics.WebhookEventsTotal.WithLabelValues(eventType, result).Inc()
	}
}
