package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
)

// MemoryRepository keeps slots as raw JSON in memory. It exercises the same
// serialize/deserialize path as the redis implementation, which is what the
// recovery semantics depend on.
type MemoryRepository struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{slots: make(map[string][]byte)}
}

// PutRaw overwrites a slot with arbitrary bytes. Tests use it to simulate a
// corrupted stored value.
func (m *MemoryRepository) PutRaw(sessionID, slot string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[m.key(sessionID, slot)] = data
}

func (m *MemoryRepository) key(sessionID, slot string) string {
	return sessionID + "/" + slot
}

func (m *MemoryRepository) get(sessionID, slot string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.slots[m.key(sessionID, slot)]
	return data, ok
}

func (m *MemoryRepository) set(sessionID, slot string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[m.key(sessionID, slot)] = data
}

func (m *MemoryRepository) clear(sessionID, slot string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, m.key(sessionID, slot))
}

func (m *MemoryRepository) GetDraft(ctx context.Context, sessionID string) (*order.Draft, bool, error) {
	data, ok := m.get(sessionID, SlotDraft)
	if !ok {
		return nil, false, nil
	}
	var draft order.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, false, fmt.Errorf("decoding draft slot: %w", err)
	}
	return &draft, true, nil
}

func (m *MemoryRepository) SetDraft(ctx context.Context, sessionID string, draft *order.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encoding draft slot: %w", err)
	}
	m.set(sessionID, SlotDraft, data)
	return nil
}

func (m *MemoryRepository) ClearDraft(ctx context.Context, sessionID string) error {
	m.clear(sessionID, SlotDraft)
	return nil
}

func (m *MemoryRepository) GetStep(ctx context.Context, sessionID string) (int, bool, error) {
	data, ok := m.get(sessionID, SlotStep)
	if !ok {
		return 0, false, nil
	}
	step, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, false, fmt.Errorf("decoding step slot: %w", err)
	}
	return step, true, nil
}

func (m *MemoryRepository) SetStep(ctx context.Context, sessionID string, step int) error {
	m.set(sessionID, SlotStep, []byte(strconv.Itoa(step)))
	return nil
}

func (m *MemoryRepository) ClearStep(ctx context.Context, sessionID string) error {
	m.clear(sessionID, SlotStep)
	return nil
}

func (m *MemoryRepository) GetList(ctx context.Context, sessionID string) ([]order.RequestItem, bool, error) {
	data, ok := m.get(sessionID, SlotList)
	if !ok {
		return nil, false, nil
	}
	var items []order.RequestItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("decoding list slot: %w", err)
	}
	return items, true, nil
}

func (m *MemoryRepository) SetList(ctx context.Context, sessionID string, items []order.RequestItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding list slot: %w", err)
	}
	m.set(sessionID, SlotList, data)
	return nil
}

func (m *MemoryRepository) ClearList(ctx context.Context, sessionID string) error {
	m.clear(sessionID, SlotList)
	return nil
}
