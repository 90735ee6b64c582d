package handler

import (
	"context"
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

func userContext(cm *grpcctx.Manager) (context.Context, model.User) {
	user := model.User{ID: uuid.New(), Roles: []model.Role{model.RoleUser}, IsActive: true}
	return cm.SetUserToContext(context.Background(), user), user
}

func TestItem_CreateItem(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, user := userContext(cm)
	units := "kg"

	svc := mocks.NewItemService(t)
	svc.On("Create", mock.Anything, model.CreateItemParams{Name: "Flour", Quantity: 1.5, QuantityUnits: &units}, user.ID).
		Return(model.Item{ID: uuid.New(), OwnerID: user.ID, Name: "Flour", Quantity: 1.5, QuantityUnits: &units}, nil)

	h := NewItem(svc, cm, testutil.MakeNoopLogger())
	out, err := h.CreateItem(ctx, &pb.CreateItemRequest{Name: "Flour", Quantity: 1.5, QuantityUnits: &units})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), out.OwnerID)
	assert.Equal(t, "kg", *out.QuantityUnits)
}

func TestItem_ListItems(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, user := userContext(cm)

	svc := mocks.NewItemService(t)
	svc.On("FindAll", mock.Anything, user.ID, model.Pagination{Limit: 2}, model.Search{Term: "fl"}).
		Return([]model.Item{{ID: uuid.New(), Name: "Flour"}}, nil)

	h := NewItem(svc, cm, testutil.MakeNoopLogger())
	out, err := h.ListItems(ctx, &pb.ListItemsRequest{Page: &pb.PageRequest{Limit: 2, Search: "fl"}})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Flour", out.Items[0].Name)
}

func TestItem_GetItem_Foreign(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, user := userContext(cm)
	id := uuid.New()

	svc := mocks.NewItemService(t)
	svc.On("FindOne", mock.Anything, id, user.ID).Return(model.Item{}, apperrors.NewErrNotFound("item", id.String()))

	h := NewItem(svc, cm, testutil.MakeNoopLogger())
	_, err := h.GetItem(ctx, &pb.IDRequest{ID: id.String()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestItem_UpdateAndRemove(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, user := userContext(cm)
	id := uuid.New()
	qty := 3.0

	svc := mocks.NewItemService(t)
	svc.On("Update", mock.Anything, model.UpdateItemParams{ID: id, Quantity: &qty}, user.ID).
		Return(model.Item{ID: id, Quantity: qty}, nil)
	svc.On("Remove", mock.Anything, id, user.ID).Return(model.Item{ID: id}, nil)

	h := NewItem(svc, cm, testutil.MakeNoopLogger())

	updated, err := h.UpdateItem(ctx, &pb.UpdateItemRequest{ID: id.String(), Quantity: &qty})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, updated.Quantity, 0.0001)

	removed, err := h.RemoveItem(ctx, &pb.IDRequest{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, id.String(), removed.ID)
}

func TestItem_InvalidID(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, _ := userContext(cm)

	h := NewItem(mocks.NewItemService(t), cm, testutil.MakeNoopLogger())
	_, err := h.RemoveItem(ctx, &pb.IDRequest{ID: "nope"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
