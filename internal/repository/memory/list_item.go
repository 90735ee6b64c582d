package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.ListItemStore = (*ListItemRepository)(nil)

type ListItemRepository struct {
	db *DB
}

func NewListItemRepository(db *DB) *ListItemRepository {
	return &ListItemRepository{db: db}
}

func (r *ListItemRepository) Create(_ context.Context, listItem model.ListItem) (model.ListItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.referencesExist(listItem) {
		return model.ListItem{}, model.ErrNotFound
	}

	listItem.Item = model.Item{}
	r.db.listItems[listItem.ID] = row[model.ListItem]{seq: r.db.next(), val: listItem}
	return r.resolve(listItem), nil
}

// GetByID returns the list item only if its list belongs to ownerID.
func (r *ListItemRepository) GetByID(_ context.Context, id, ownerID uuid.UUID) (model.ListItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	li, ok := r.db.listItems[id]
	if !ok {
		return model.ListItem{}, model.ErrNotFound
	}
	l, ok := r.db.lists[li.val.ListID]
	if !ok || l.val.OwnerID != ownerID {
		return model.ListItem{}, model.ErrNotFound
	}
	return r.resolve(li.val), nil
}

func (r *ListItemRepository) List(_ context.Context, filter model.Filter) ([]model.ListItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	l, ok := r.db.lists[filter.ListID]
	if !ok || l.val.OwnerID != filter.OwnerID {
		return nil, nil
	}

	var rows []row[model.ListItem]
	for _, li := range r.db.listItems {
		if li.val.ListID != filter.ListID {
			continue
		}
		resolved := r.resolve(li.val)
		if filter.MatchesName(resolved.Item.Name) {
			rows = append(rows, row[model.ListItem]{seq: li.seq, val: resolved})
		}
	}

	listItems := sortedValues(rows, func(li model.ListItem) time.Time { return li.CreatedAt })
	return paginate(listItems, filter.Pagination), nil
}

func (r *ListItemRepository) CountByList(_ context.Context, listID uuid.UUID) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var n int
	for _, li := range r.db.listItems {
		if li.val.ListID == listID {
			n++
		}
	}
	return n, nil
}

func (r *ListItemRepository) Update(_ context.Context, listItem model.ListItem) (model.ListItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.listItems[listItem.ID]
	if !ok || !r.referencesExist(listItem) {
		return model.ListItem{}, model.ErrNotFound
	}

	listItem.Item = model.Item{}
	listItem.CreatedAt = existing.val.CreatedAt
	listItem.UpdatedAt = r.db.now()
	r.db.listItems[listItem.ID] = row[model.ListItem]{seq: existing.seq, val: listItem}
	return r.resolve(listItem), nil
}

func (r *ListItemRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.listItems[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.db.listItems, id)
	return nil
}

func (r *ListItemRepository) referencesExist(li model.ListItem) bool {
	_, listOK := r.db.lists[li.ListID]
	_, itemOK := r.db.items[li.ItemID]
	return listOK && itemOK
}

func (r *ListItemRepository) resolve(li model.ListItem) model.ListItem {
	if it, ok := r.db.items[li.ItemID]; ok {
		li.Item = cloneItem(it.val)
	}
	return li
}
