package statistics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agrofono/checkout/pkg/types"
)

// Service computes daily counters over the purchase and subscription
// collections for the admin surface.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type DailyStatisticRequest struct {
	// From and To are inclusive dates in YYYY-MM-DD form.
	From string `json:"from"`
	To   string `json:"to"`
}

type DailyStatisticItem struct {
	Date                  string `json:"date"`
	PurchasesCreated      int64  `json:"purchases_created"`
	PurchasesCompleted    int64  `json:"purchases_completed"`
	SubscriptionsCreated  int64  `json:"subscriptions_created"`
	SubscriptionsApproved int64  `json:"subscriptions_approved"`
}

type DailyStatisticResponse struct {
	Items []*DailyStatisticItem `json:"items"`
}

type dateCount struct {
	Date  string
	Count int64
}

const dateLayout = "2006-01-02"

// ErrInvalidRange reports a malformed or inverted date range.
var ErrInvalidRange = errors.New("invalid date range")

func (s *Service) GetDailyStatistics(ctx context.Context, req *DailyStatisticRequest) (*DailyStatisticResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidRange)
	}
	from, err := time.Parse(dateLayout, req.From)
	if err != nil {
		return nil, fmt.Errorf("%w: bad from date %q", ErrInvalidRange, req.From)
	}
	to, err := time.Parse(dateLayout, req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: bad to date %q", ErrInvalidRange, req.To)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to before from", ErrInvalidRange)
	}
	end := to.AddDate(0, 0, 1)

	byDate := map[string]*DailyStatisticItem{}
	item := func(date string) *DailyStatisticItem {
		if it, ok := byDate[date]; ok {
			return it
		}
		it := &DailyStatisticItem{Date: date}
		byDate[date] = it
		return it
	}

	queries := []struct {
		sql    string
		args   []any
		assign func(it *DailyStatisticItem, n int64)
	}{
		{
			sql: `SELECT to_char(created_at, 'YYYY-MM-DD') AS date, count(*) AS count
				FROM consultas WHERE created_at >= ? AND created_at < ? GROUP BY 1`,
			args:   []any{from, end},
			assign: func(it *DailyStatisticItem, n int64) { it.PurchasesCreated = n },
		},
		{
			sql: `SELECT to_char(payment_date, 'YYYY-MM-DD') AS date, count(*) AS count
				FROM consultas WHERE status = ? AND payment_date >= ? AND payment_date < ? GROUP BY 1`,
			args:   []any{types.PurchaseStatusCompleted, from, end},
			assign: func(it *DailyStatisticItem, n int64) { it.PurchasesCompleted = n },
		},
		{
			sql: `SELECT to_char(created_at, 'YYYY-MM-DD') AS date, count(*) AS count
				FROM subscriptions WHERE created_at >= ? AND created_at < ? GROUP BY 1`,
			args:   []any{from, end},
			assign: func(it *DailyStatisticItem, n int64) { it.SubscriptionsCreated = n },
		},
		{
			sql: `SELECT to_char(updated_at, 'YYYY-MM-DD') AS date, count(*) AS count
				FROM subscriptions WHERE status = ? AND updated_at >= ? AND updated_at < ? GROUP BY 1`,
			args:   []any{types.SubscriptionStatusApproved, from, end},
			assign: func(it *DailyStatisticItem, n int64) { it.SubscriptionsApproved = n },
		},
	}

	for _, q := range queries {
		var rows []dateCount
		if err := s.db.WithContext(ctx).Raw(q.sql, q.args...).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to query statistics: %w", err)
		}
		for _, r := range rows {
			q.assign(item(r.Date), r.Count)
		}
	}

	res := &DailyStatisticResponse{}
	for d := from; d.Before(end); d = d.AddDate(0, 0, 1) {
		res.Items = append(res.Items, item(d.Format(dateLayout)))
	}
	return res, nil
}

var Module = fx.Options(
	fx.Provide(NewService),
)
