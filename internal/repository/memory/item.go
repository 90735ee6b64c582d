package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.ItemStore = (*ItemRepository)(nil)

type ItemRepository struct {
	db *DB
}

func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(_ context.Context, item model.Item) (model.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[item.OwnerID]; !ok {
		return model.Item{}, model.ErrNotFound
	}

	item = cloneItem(item)
	r.db.items[item.ID] = row[model.Item]{seq: r.db.next(), val: item}
	return cloneItem(item), nil
}

func (r *ItemRepository) GetByID(_ context.Context, id, ownerID uuid.UUID) (model.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	it, ok := r.db.items[id]
	if !ok || it.val.OwnerID != ownerID {
		return model.Item{}, model.ErrNotFound
	}
	return cloneItem(it.val), nil
}

func (r *ItemRepository) List(_ context.Context, filter model.Filter) ([]model.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var rows []row[model.Item]
	for _, it := range r.db.items {
		if it.val.OwnerID == filter.OwnerID && filter.MatchesName(it.val.Name) {
			rows = append(rows, row[model.Item]{seq: it.seq, val: cloneItem(it.val)})
		}
	}

	items := sortedValues(rows, func(i model.Item) time.Time { return i.CreatedAt })
	return paginate(items, filter.Pagination), nil
}

func (r *ItemRepository) CountByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var n int
	for _, it := range r.db.items {
		if it.val.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *ItemRepository) Update(_ context.Context, item model.Item) (model.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.items[item.ID]
	if !ok || existing.val.OwnerID != item.OwnerID {
		return model.Item{}, model.ErrNotFound
	}

	item.CreatedAt = existing.val.CreatedAt
	item.UpdatedAt = r.db.now()
	item = cloneItem(item)
	r.db.items[item.ID] = row[model.Item]{seq: existing.seq, val: item}
	return cloneItem(item), nil
}

// Delete removes the item and every list item referencing it.
func (r *ItemRepository) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	it, ok := r.db.items[id]
	if !ok || it.val.OwnerID != ownerID {
		return model.ErrNotFound
	}

	delete(r.db.items, id)
	for liID, li := range r.db.listItems {
		if li.val.ItemID == id {
			delete(r.db.listItems, liID)
		}
	}
	return nil
}

func cloneItem(i model.Item) model.Item {
	if i.QuantityUnits != nil {
		units := *i.QuantityUnits
		i.QuantityUnits = &units
	}
	return i
}
