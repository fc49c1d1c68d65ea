package types

// PurchaseStatus tracks a one-off consultation purchase. The machine is
// one-way: pending until the provider confirms approval, then completed.
// A declined payment never transitions; there is no failed state.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
)

// SubscriptionStatus tracks a recurring subscription, pending until the
// provider reports the preapproval as authorized.
type SubscriptionStatus string

const (
	SubscriptionStatusPending  SubscriptionStatus = "pending"
	SubscriptionStatusApproved SubscriptionStatus = "approved"
)

// Provider-side vocabulary consumed by the reconciliation engine.
const (
	// EventTypePayment is the webhook event type for one-off payments.
	EventTypePayment = "payment"
	// EventTypeSubscriptionPreapproval is the webhook event type for
	// subscription preapprovals.
	EventTypeSubscriptionPreapproval = "subscription_preapproval"

	// PaymentStatusApproved is the provider payment status required to
	// complete a purchase.
	PaymentStatusApproved = "approved"
	// PreapprovalStatusAuthorized is the provider preapproval status
	// required to approve a subscription.
	PreapprovalStatusAuthorized = "authorized"
)
