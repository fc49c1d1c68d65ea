package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agrofono/checkout/internal/models"
	"github.com/agrofono/checkout/pkg/types"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) Gateway {
	return &Service{db: db, log: log}
}

func (s *Service) CreatePurchase(ctx context.Context, p *models.Purchase) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (s *Service) GetPurchase(ctx context.Context, id string) (*models.Purchase, error) {
	var p models.Purchase
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return &p, nil
}

func (s *Service) CompletePurchase(ctx context.Context, id string, paymentDate time.Time, payerEmail *string) error {
	res := s.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      types.PurchaseStatusCompleted,
			"payer_email": payerEmail,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to complete purchase: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	// First completion wins the payment date; replays rewrite the other
	// fields with identical values.
	if err := s.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("id = ? AND payment_date IS NULL", id).
		Update("payment_date", paymentDate).Error; err != nil {
		return fmt.Errorf("failed to set payment date: %w", err)
	}
	return nil
}

func (s *Service) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (s *Service) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &sub, nil
}

func (s *Service) FindSubscriptionByProviderID(ctx context.Context, subscriptionID string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.WithContext(ctx).Where("subscription_id = ?", subscriptionID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	return &sub, nil
}

func (s *Service) ApproveSubscription(ctx context.Context, subscriptionID string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("subscription_id = ? AND status = ?", subscriptionID, types.SubscriptionStatusPending).
		Update("status", types.SubscriptionStatusApproved)
	if res.Error != nil {
		return false, fmt.Errorf("failed to approve subscription: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *Service) CreateAccount(ctx context.Context, a *models.Account) (bool, error) {
	if _, err := s.FindAccountBySubscriptionID(ctx, a.SubscriptionID); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		// The unique index on subscription_id backstops concurrent
		// provisioning attempts.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create account: %w", err)
	}
	return true, nil
}

func (s *Service) FindAccountBySubscriptionID(ctx context.Context, subscriptionID string) (*models.Account, error) {
	var a models.Account
	if err := s.db.WithContext(ctx).Where("subscription_id = ?", subscriptionID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &a, nil
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

func (s *Service) scan(ctx context.Context, model any, req *ScanRequest, rows any) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(model)
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}
	if err := q.Find(rows).Error; err != nil {
		return 0, fmt.Errorf("failed to list records: %w", err)
	}
	return total, nil
}

func (s *Service) ScanPurchases(ctx context.Context, req *ScanRequest) (*ScanPurchasesResponse, error) {
	var rows []*models.Purchase
	total, err := s.scan(ctx, &models.Purchase{}, req, &rows)
	if err != nil {
		return nil, err
	}
	return &ScanPurchasesResponse{Items: rows, Total: total}, nil
}

func (s *Service) ScanSubscriptions(ctx context.Context, req *ScanRequest) (*ScanSubscriptionsResponse, error) {
	var rows []*models.Subscription
	total, err := s.scan(ctx, &models.Subscription{}, req, &rows)
	if err != nil {
		return nil, err
	}
	return &ScanSubscriptionsResponse{Items: rows, Total: total}, nil
}

var Module = fx.Options(
	fx.Provide(NewService),
)
