// Package redis keeps the dashboard statistics snapshot in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const statisticsKey = "laundry:dashboard:statistics"

type statisticsPayload struct {
	GeneratedAt            time.Time `json:"generatedAt"`
	CompletedToday         int       `json:"completedToday"`
	PendingIssues          int       `json:"pendingIssues"`
	PendingDelivery        int       `json:"pendingDelivery"`
	PendingPickup          int       `json:"pendingPickup"`
	TotalOrders            int       `json:"totalOrders"`
	CompletedOrders        int       `json:"completedOrders"`
	CancelledOrders        int       `json:"cancelledOrders"`
	RevenueCents           int64     `json:"revenueCents"`
	AverageOrderValueCents int64     `json:"averageOrderValueCents"`
}

// StatisticsCache implements ports.StatisticsCache. Entries expire after TTL
// so a stopped refresh job cannot serve stale numbers forever.
type StatisticsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStatisticsCache(client *redis.Client, ttl time.Duration) *StatisticsCache {
	return &StatisticsCache{Client: client, TTL: ttl}
}

func (c *StatisticsCache) Get(ctx context.Context) (ports.OrderStatistics, error) {
	raw, err := c.Client.Get(ctx, statisticsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.OrderStatistics{}, errs.NewObjectNotFoundError("statistics", statisticsKey)
		}
		return ports.OrderStatistics{}, err
	}

	var p statisticsPayload
	if err = json.Unmarshal(raw, &p); err != nil {
		return ports.OrderStatistics{}, err
	}

	revenue, err := kernel.NewMoney(p.RevenueCents)
	if err != nil {
		return ports.OrderStatistics{}, err
	}
	average, err := kernel.NewMoney(p.AverageOrderValueCents)
	if err != nil {
		return ports.OrderStatistics{}, err
	}

	return ports.OrderStatistics{
		GeneratedAt:       p.GeneratedAt,
		CompletedToday:    p.CompletedToday,
		PendingIssues:     p.PendingIssues,
		PendingDelivery:   p.PendingDelivery,
		PendingPickup:     p.PendingPickup,
		TotalOrders:       p.TotalOrders,
		CompletedOrders:   p.CompletedOrders,
		CancelledOrders:   p.CancelledOrders,
		Revenue:           revenue,
		AverageOrderValue: average,
	}, nil
}

func (c *StatisticsCache) Set(ctx context.Context, stats ports.OrderStatistics) error {
	payload, err := json.Marshal(statisticsPayload{
		GeneratedAt:            stats.GeneratedAt,
		CompletedToday:         stats.CompletedToday,
		PendingIssues:          stats.PendingIssues,
		PendingDelivery:        stats.PendingDelivery,
		PendingPickup:          stats.PendingPickup,
		TotalOrders:            stats.TotalOrders,
		CompletedOrders:        stats.CompletedOrders,
		CancelledOrders:        stats.CancelledOrders,
		RevenueCents:           stats.Revenue.Cents(),
		AverageOrderValueCents: stats.AverageOrderValue.Cents(),
	})
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, statisticsKey, payload, c.TTL).Err()
}
