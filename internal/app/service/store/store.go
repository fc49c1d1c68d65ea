package store

import (
	"context"
	"errors"
	"time"

	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/pkg/types"
)

// ErrNotFound reports an absent record. Callers decide whether absence is
// an error (purchase webhook: 404) or a loggable no-op (subscription
// approval).
var ErrNotFound = errors.New("store: record not found")

// Gateway is the keyed persistence substrate shared by every service.
// Writes are independent last-write-wins document updates; the only guarded
// operation is ApproveSubscription, which is a compare-and-swap on status.
type Gateway interface {
	CreatePurchase(ctx context.Context, p *models.Purchase) error
	GetPurchase(ctx context.Context, id string) (*models.Purchase, error)
	// CompletePurchase marks the purchase completed and records the payer
	// email. The payment date is set only on the first completion so webhook
	// replays keep the original timestamp.
	CompletePurchase(ctx context.Context, id string, paymentDate time.Time, payerEmail *string) error

	CreateSubscription(ctx context.Context, s *models.Subscription) error
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	FindSubscriptionByProviderID(ctx context.Context, subscriptionID string) (*models.Subscription, error)
	// ApproveSubscription transitions pending→approved for the given
	// provider subscription id. Returns true only for the caller that
	// performed the transition; a record already approved yields false.
	ApproveSubscription(ctx context.Context, subscriptionID string) (bool, error)

	// CreateAccount provisions an account unless one already exists for the
	// subscription. Returns true when this call created it.
	CreateAccount(ctx context.Context, a *models.Account) (bool, error)
	FindAccountBySubscriptionID(ctx context.Context, subscriptionID string) (*models.Account, error)

	ScanPurchases(ctx context.Context, req *ScanRequest) (*ScanPurchasesResponse, error)
	ScanSubscriptions(ctx context.Context, req *ScanRequest) (*ScanSubscriptionsResponse, error)
}

// ScanRequest is a paginated, filterable admin listing request.
type ScanRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanPurchasesResponse struct {
	Items []*models.Purchase `json:"items"`
	Total int64              `json:"total"`
}

type ScanSubscriptionsResponse struct {
	Items []*models.Subscription `json:"items"`
	Total int64                  `json:"total"`
}
