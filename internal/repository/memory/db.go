// Package memory is an in-process store implementing the model store
// interfaces. It is used for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.Transactor = (*DB)(nil)

type txKey struct{}

// DB holds every table behind one lock. Transactions are serialized.
type DB struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	seq  uint64

	users     map[uuid.UUID]row[model.User]
	items     map[uuid.UUID]row[model.Item]
	lists     map[uuid.UUID]row[model.List]
	listItems map[uuid.UUID]row[model.ListItem]

	now func() time.Time
}

// row keeps insertion order so listings are stable when timestamps collide.
type row[T any] struct {
	seq uint64
	val T
}

func NewDB() *DB {
	return &DB{
		users:     make(map[uuid.UUID]row[model.User]),
		items:     make(map[uuid.UUID]row[model.Item]),
		lists:     make(map[uuid.UUID]row[model.List]),
		listItems: make(map[uuid.UUID]row[model.ListItem]),
		now:       time.Now,
	}
}

// WithinTx runs fn while holding the transaction lock. Nested calls join the outer one.
// Writes are applied immediately, there is no rollback.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	db.txMu.Lock()
	defer db.txMu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

func (db *DB) next() uint64 {
	db.seq++
	return db.seq
}

func (db *DB) Close() error {
	return nil
}

// sortedValues orders rows by created time, then insertion order.
func sortedValues[T any](rows []row[T], createdAt func(T) time.Time) []T {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := createdAt(rows[i].val), createdAt(rows[j].val)
		if !a.Equal(b) {
			return a.Before(b)
		}
		return rows[i].seq < rows[j].seq
	})
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.val)
	}
	return out
}

func paginate[T any](vals []T, p model.Pagination) []T {
	p = p.Normalize()
	if p.Offset >= len(vals) {
		return nil
	}
	end := p.Offset + p.Limit
	if end > len(vals) {
		end = len(vals)
	}
	return vals[p.Offset:end]
}
