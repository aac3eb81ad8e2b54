package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"loan-ledger/internal/usecase/loan"

	"github.com/redis/go-redis/v9"
)

const loanViewPrefix = "loan:view:"

// LoanViewCache keeps rendered loan views in redis. Loans are never updated
// through this service, so entries only expire.
type LoanViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLoanViewCache(rdb *redis.Client, ttl time.Duration) *LoanViewCache {
	return &LoanViewCache{rdb: rdb, ttl: ttl}
}

func loanViewKey(id uint64) string { return loanViewPrefix + strconv.FormatUint(id, 10) }

// Get returns (nil, nil) on a miss.
func (c *LoanViewCache) Get(ctx context.Context, id uint64) (*loan.LoanDTO, error) {
	raw, err := c.rdb.Get(ctx, loanViewKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dto loan.LoanDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		// unreadable entries count as misses and are dropped
		_ = c.rdb.Del(ctx, loanViewKey(id)).Err()
		return nil, nil
	}
	return &dto, nil
}

func (c *LoanViewCache) Set(ctx context.Context, dto *loan.LoanDTO) error {
	payload, err := json.Marshal(dto)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, loanViewKey(dto.ID), payload, c.ttl).Err()
}
