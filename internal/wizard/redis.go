package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/redis"
)

// slotStore is the subset of the redis client the repository needs.
type slotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	WizardSlotKey(sessionID, slot string) string
}

// RedisRepository stores each slot under its own namespaced key with a
// session TTL, so abandoned sessions age out on their own.
type RedisRepository struct {
	store slotStore
	ttl   time.Duration
}

func NewRedisRepository(store slotStore, ttl time.Duration) *RedisRepository {
	return &RedisRepository{store: store, ttl: ttl}
}

func (r *RedisRepository) getRaw(ctx context.Context, sessionID, slot string) (string, bool, error) {
	val, err := r.store.Get(ctx, r.store.WizardSlotKey(sessionID, slot))
	if errors.Is(err, redis.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s slot: %w", slot, err)
	}
	return val, true, nil
}

func (r *RedisRepository) GetDraft(ctx context.Context, sessionID string) (*order.Draft, bool, error) {
	raw, found, err := r.getRaw(ctx, sessionID, SlotDraft)
	if err != nil || !found {
		return nil, false, err
	}
	var draft order.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, false, fmt.Errorf("decoding draft slot: %w", err)
	}
	return &draft, true, nil
}

func (r *RedisRepository) SetDraft(ctx context.Context, sessionID string, draft *order.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encoding draft slot: %w", err)
	}
	return r.store.Set(ctx, r.store.WizardSlotKey(sessionID, SlotDraft), string(data), r.ttl)
}

func (r *RedisRepository) ClearDraft(ctx context.Context, sessionID string) error {
	return r.store.Del(ctx, r.store.WizardSlotKey(sessionID, SlotDraft))
}

func (r *RedisRepository) GetStep(ctx context.Context, sessionID string) (int, bool, error) {
	raw, found, err := r.getRaw(ctx, sessionID, SlotStep)
	if err != nil || !found {
		return 0, false, err
	}
	step, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("decoding step slot: %w", err)
	}
	return step, true, nil
}

func (r *RedisRepository) SetStep(ctx context.Context, sessionID string, step int) error {
	return r.store.Set(ctx, r.store.WizardSlotKey(sessionID, SlotStep), strconv.Itoa(step), r.ttl)
}

func (r *RedisRepository) ClearStep(ctx context.Context, sessionID string) error {
	return r.store.Del(ctx, r.store.WizardSlotKey(sessionID, SlotStep))
}

func (r *RedisRepository) GetList(ctx context.Context, sessionID string) ([]order.RequestItem, bool, error) {
	raw, found, err := r.getRaw(ctx, sessionID, SlotList)
	if err != nil || !found {
		return nil, false, err
	}
	var items []order.RequestItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decoding list slot: %w", err)
	}
	return items, true, nil
}

func (r *RedisRepository) SetList(ctx context.Context, sessionID string, items []order.RequestItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding list slot: %w", err)
	}
	return r.store.Set(ctx, r.store.WizardSlotKey(sessionID, SlotList), string(data), r.ttl)
}

func (r *RedisRepository) ClearList(ctx context.Context, sessionID string) error {
	return r.store.Del(ctx, r.store.WizardSlotKey(sessionID, SlotList))
}
