package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDailyStatistics_RejectsBadRange(t *testing.T) {
	s := NewService(nil, nil)

	cases := []*DailyStatisticRequest{
		nil,
		{From: "not-a-date", To: "2026-01-02"},
		{From: "2026-01-01", To: "bad"},
		{From: "2026-01-05", To: "2026-01-01"},
	}
	for _, req := range cases {
		_, err := s.GetDailyStatistics(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidRange)
	}
}
