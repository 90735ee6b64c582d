package handler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcctx "github.com/dtroode/listkeeper-server/internal/api/grpc/context"
	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/mocks"
	"github.com/dtroode/listkeeper-server/internal/model"
	"github.com/dtroode/listkeeper-server/internal/testutil"
)

func TestListItem_CreateListItem(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, user := userContext(cm)
	listID, itemID := uuid.New(), uuid.New()

	svc := mocks.NewListItemService(t)
	svc.On("Create", mock.Anything, model.CreateListItemParams{ListID: listID, ItemID: itemID, Quantity: 2}, user.ID).
		Return(model.ListItem{
			ID:       uuid.New(),
			ListID:   listID,
			ItemID:   itemID,
			Quantity: 2,
			Item:     model.Item{ID: itemID, Name: "Eggs"},
		}, nil)

	h := NewListItem(svc, cm, testutil.MakeNoopLogger())
	out, err := h.CreateListItem(ctx, &pb.CreateListItemRequest{ListID: listID.String(), ItemID: itemID.String(), Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "Eggs", out.Item.Name)
	assert.Equal(t, listID.String(), out.ListID)
}

func TestListItem_CreateListItem_ForeignReference(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, _ := userContext(cm)
	listID, itemID := uuid.New(), uuid.New()

	svc := mocks.NewListItemService(t)
	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(model.ListItem{}, apperrors.NewErrNotFound("item", itemID.String()))

	h := NewListItem(svc, cm, testutil.MakeNoopLogger())
	_, err := h.CreateListItem(ctx, &pb.CreateListItemRequest{ListID: listID.String(), ItemID: itemID.String()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListItem_ListListItems(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, user := userContext(cm)
	listID := uuid.New()

	svc := mocks.NewListItemService(t)
	svc.On("FindAll", mock.Anything, listID, user.ID, model.Pagination{Offset: 1}, model.Search{Term: "egg"}).
		Return([]model.ListItem{{ID: uuid.New(), ListID: listID}}, nil)

	h := NewListItem(svc, cm, testutil.MakeNoopLogger())
	out, err := h.ListListItems(ctx, &pb.ListListItemsRequest{ListID: listID.String(), Page: &pb.PageRequest{Offset: 1, Search: "egg"}})
	require.NoError(t, err)
	assert.Len(t, out.ListItems, 1)
}

func TestListItem_UpdateListItem(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, user := userContext(cm)
	id, target := uuid.New(), uuid.New()
	targetStr := target.String()
	done := true

	svc := mocks.NewListItemService(t)
	svc.On("Update", mock.Anything, model.UpdateListItemParams{ID: id, ListID: &target, Completed: &done}, user.ID).
		Return(model.ListItem{ID: id, ListID: target, Completed: true}, nil)

	h := NewListItem(svc, cm, testutil.MakeNoopLogger())
	out, err := h.UpdateListItem(ctx, &pb.UpdateListItemRequest{ID: id.String(), ListID: &targetStr, Completed: &done})
	require.NoError(t, err)
	assert.True(t, out.Completed)
	assert.Equal(t, targetStr, out.ListID)
}

func TestListItem_UpdateListItem_BadListID(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, _ := userContext(cm)
	bad := "x"

	h := NewListItem(mocks.NewListItemService(t), cm, testutil.MakeNoopLogger())
	_, err := h.UpdateListItem(ctx, &pb.UpdateListItemRequest{ID: uuid.NewString(), ListID: &bad})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListItem_GetAndRemove(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, user := userContext(cm)
	id := uuid.New()

	svc := mocks.NewListItemService(t)
	svc.On("FindOne", mock.Anything, id, user.ID).Return(model.ListItem{ID: id}, nil)
	svc.On("Remove", mock.Anything, id, user.ID).Return(model.ListItem{ID: id}, nil)

	h := NewListItem(svc, cm, testutil.MakeNoopLogger())

	got, err := h.GetListItem(ctx, &pb.IDRequest{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, id.String(), got.ID)

	removed, err := h.RemoveListItem(ctx, &pb.IDRequest{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, id.String(), removed.ID)
}
