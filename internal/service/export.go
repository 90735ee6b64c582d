package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ ExportCleaner = (*Exporter)(nil)

// Exporter writes JSON snapshots of lists to blob storage.
type Exporter struct {
	storage   model.Storage
	lists     model.ListStore
	listItems model.ListItemStore
	logger    *logger.Logger
	now       func() time.Time
}

func NewExporter(storage model.Storage, lists model.ListStore, listItems model.ListItemStore, logger *logger.Logger) *Exporter {
	return &Exporter{
		storage:   storage,
		lists:     lists,
		listItems: listItems,
		logger:    logger,
		now:       time.Now,
	}
}

type exportDocument struct {
	ID         uuid.UUID    `json:"id"`
	OwnerID    uuid.UUID    `json:"owner_id"`
	Name       string       `json:"name"`
	TotalItems int          `json:"total_items"`
	Items      []exportLine `json:"items"`
	ExportedAt time.Time    `json:"exported_at"`
}

type exportLine struct {
	ID            uuid.UUID `json:"id"`
	ItemID        uuid.UUID `json:"item_id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	QuantityUnits *string   `json:"quantity_units,omitempty"`
	Completed     bool      `json:"completed"`
}

// ExportKey is the object key of the export of list.
func ExportKey(list model.List) string {
	return fmt.Sprintf("exports/%s/%s.json", list.OwnerID, list.ID)
}

// ExportList snapshots the list and every one of its list items, replacing any previous export.
func (e *Exporter) ExportList(ctx context.Context, listID, owner uuid.UUID) (model.ListExport, error) {
	list, err := e.lists.GetByID(ctx, listID, owner)
	if err != nil {
		return model.ListExport{}, lookupError(e.logger, "list", listID.String(), err)
	}

	doc := exportDocument{
		ID:         list.ID,
		OwnerID:    list.OwnerID,
		Name:       list.Name,
		Items:      []exportLine{},
		ExportedAt: e.now().UTC(),
	}

	filter := model.NewFilter(owner, model.Pagination{Limit: model.MaxLimit}, model.Search{}).ForList(list.ID)
	for {
		page, err := e.listItems.List(ctx, filter)
		if err != nil {
			return model.ListExport{}, storeError(e.logger, "Exporter: failed to read list items", err,
				"list_id", list.ID)
		}
		for _, li := range page {
			doc.Items = append(doc.Items, exportLine{
				ID:            li.ID,
				ItemID:        li.ItemID,
				Name:          li.Item.Name,
				Quantity:      li.Quantity,
				QuantityUnits: li.Item.QuantityUnits,
				Completed:     li.Completed,
			})
		}
		if len(page) < filter.Pagination.Limit {
			break
		}
		filter.Pagination.Offset += len(page)
	}
	doc.TotalItems = len(doc.Items)

	body, err := json.Marshal(doc)
	if err != nil {
		e.logger.Error("Exporter: failed to encode list",
			"list_id", list.ID,
			"error", err.Error())
		return model.ListExport{}, apperrors.NewErrInternalServerError(err)
	}

	key := ExportKey(list)
	if err := e.storage.Upload(ctx, key, bytes.NewReader(body), int64(len(body))); err != nil {
		e.logger.Error("Exporter: failed to upload export",
			"list_id", list.ID,
			"key", key,
			"error", err.Error())
		return model.ListExport{}, apperrors.NewErrInternalServerError(err)
	}

	e.logger.Info("Exporter: list exported",
		"list_id", list.ID,
		"key", key,
		"size", len(body))

	return model.ListExport{
		ListID:     list.ID,
		Key:        key,
		Size:       int64(len(body)),
		ExportedAt: doc.ExportedAt,
	}, nil
}

// GetListExport returns the last export of the list, or NotFound if it was never exported.
func (e *Exporter) GetListExport(ctx context.Context, listID, owner uuid.UUID) ([]byte, error) {
	list, err := e.lists.GetByID(ctx, listID, owner)
	if err != nil {
		return nil, lookupError(e.logger, "list", listID.String(), err)
	}

	key := ExportKey(list)
	exists, err := e.storage.Exists(ctx, key)
	if err != nil {
		e.logger.Error("Exporter: failed to stat export",
			"key", key,
			"error", err.Error())
		return nil, apperrors.NewErrInternalServerError(err)
	}
	if !exists {
		return nil, apperrors.NewErrNotFound("list export", listID.String())
	}

	rc, err := e.storage.Download(ctx, key)
	if err != nil {
		e.logger.Error("Exporter: failed to download export",
			"key", key,
			"error", err.Error())
		return nil, apperrors.NewErrInternalServerError(err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		e.logger.Error("Exporter: failed to read export",
			"key", key,
			"error", err.Error())
		return nil, apperrors.NewErrInternalServerError(err)
	}

	return data, nil
}

// DiscardExport removes the export of list if there is one.
func (e *Exporter) DiscardExport(ctx context.Context, list model.List) error {
	return e.storage.Delete(ctx, ExportKey(list))
}
