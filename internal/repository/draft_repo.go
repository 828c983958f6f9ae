package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bookit/internal/domain"

	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "checkout:draft:"

var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository keeps checkout drafts in redis with a server-assigned TTL.
type DraftRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDraftRepository(rdb *redis.Client, ttl time.Duration) *DraftRepository {
	return &DraftRepository{rdb: rdb, ttl: ttl}
}

func (r *DraftRepository) Save(ctx context.Context, d *domain.CheckoutDraft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, draftKeyPrefix+d.ID, data, r.ttl).Err()
}

func (r *DraftRepository) Get(ctx context.Context, id string) (*domain.CheckoutDraft, error) {
	data, err := r.rdb.Get(ctx, draftKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	var d domain.CheckoutDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
