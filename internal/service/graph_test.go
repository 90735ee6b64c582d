package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/model"
)

func TestGraph_User(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv(t)
	owner := e.signup(t, "owner@example.com")
	other := e.signup(t, "other@example.com")

	apple, err := e.items.Create(ctx, model.CreateItemParams{Name: "Apple", Quantity: 3}, owner.ID)
	require.NoError(t, err)
	_, err = e.items.Create(ctx, model.CreateItemParams{Name: "Pear", Quantity: 1}, owner.ID)
	require.NoError(t, err)
	_, err = e.items.Create(ctx, model.CreateItemParams{Name: "Foreign", Quantity: 1}, other.ID)
	require.NoError(t, err)

	fruit, err := e.lists.Create(ctx, model.CreateListParams{Name: "Fruit"}, owner.ID)
	require.NoError(t, err)
	_, err = e.lists.Create(ctx, model.CreateListParams{Name: "Empty"}, owner.ID)
	require.NoError(t, err)
	_, err = e.listItems.Create(ctx, model.CreateListItemParams{ListID: fruit.ID, ItemID: apple.ID, Quantity: 2}, owner.ID)
	require.NoError(t, err)

	t.Run("counts only", func(t *testing.T) {
		node, err := e.graph.User(ctx, owner.ID, model.UserGraphQuery{})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, node.User.ID)
		assert.Equal(t, 2, node.ItemCount)
		assert.Equal(t, 2, node.ListCount)
		assert.Nil(t, node.Items)
		assert.Nil(t, node.Lists)
	})

	t.Run("nested selection", func(t *testing.T) {
		node, err := e.graph.User(ctx, owner.ID, model.UserGraphQuery{
			Items:     &model.Page{Search: model.Search{Term: "app"}},
			Lists:     &model.Page{Pagination: model.Pagination{Limit: 5}},
			ListItems: &model.Page{},
		})
		require.NoError(t, err)

		require.Len(t, node.Items, 1)
		assert.Equal(t, "Apple", node.Items[0].Name)

		require.Len(t, node.Lists, 2)
		assert.Equal(t, "Fruit", node.Lists[0].List.Name)
		assert.Equal(t, 1, node.Lists[0].TotalItems)
		require.Len(t, node.Lists[0].Items, 1)
		assert.Equal(t, "Apple", node.Lists[0].Items[0].Item.Name)
		assert.Equal(t, 0, node.Lists[1].TotalItems)
		assert.Empty(t, node.Lists[1].Items)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := e.graph.User(ctx, uuid.New(), model.UserGraphQuery{})
		requireCode(t, err, apperrors.CodeNotFound)
	})
}

func TestGraph_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := newEnv(t)
	owner := e.signup(t, "owner@example.com")
	other := e.signup(t, "other@example.com")

	item, err := e.items.Create(ctx, model.CreateItemParams{Name: "Soap", Quantity: 1}, owner.ID)
	require.NoError(t, err)
	list, err := e.lists.Create(ctx, model.CreateListParams{Name: "Bath"}, owner.ID)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := e.listItems.Create(ctx, model.CreateListItemParams{ListID: list.ID, ItemID: item.ID, Quantity: i}, owner.ID)
		require.NoError(t, err)
	}

	node, err := e.graph.List(ctx, list.ID, owner.ID, model.ListGraphQuery{Items: &model.Page{Pagination: model.Pagination{Limit: 2}}})
	require.NoError(t, err)
	assert.Equal(t, 3, node.TotalItems)
	assert.Len(t, node.Items, 2)

	_, err = e.graph.List(ctx, list.ID, other.ID, model.ListGraphQuery{})
	requireCode(t, err, apperrors.CodeNotFound)
}
