package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/model"
)

// Graph composes users, lists and list items into nested responses.
// Every nested read is scoped to the owner of the parent node.
type Graph struct {
	users     *User
	items     *Item
	lists     *List
	listItems *ListItem
}

func NewGraph(users *User, items *Item, lists *List, listItems *ListItem) *Graph {
	return &Graph{
		users:     users,
		items:     items,
		lists:     lists,
		listItems: listItems,
	}
}

func (g *Graph) User(ctx context.Context, id uuid.UUID, q model.UserGraphQuery) (model.UserGraph, error) {
	user, err := g.users.FindOneByID(ctx, id)
	if err != nil {
		return model.UserGraph{}, err
	}
	return g.UserNode(ctx, user, q)
}

// UserNode resolves the aggregates and selected collections of an already loaded user.
func (g *Graph) UserNode(ctx context.Context, user model.User, q model.UserGraphQuery) (model.UserGraph, error) {
	node := model.UserGraph{User: user}

	var err error
	if node.ItemCount, err = g.users.ItemCountByUser(ctx, user); err != nil {
		return model.UserGraph{}, err
	}
	if node.ListCount, err = g.users.ListCountByUser(ctx, user); err != nil {
		return model.UserGraph{}, err
	}

	if q.Items != nil {
		if node.Items, err = g.items.FindAll(ctx, user.ID, q.Items.Pagination, q.Items.Search); err != nil {
			return model.UserGraph{}, err
		}
	}

	if q.Lists != nil {
		lists, err := g.lists.FindAll(ctx, user.ID, q.Lists.Pagination, q.Lists.Search)
		if err != nil {
			return model.UserGraph{}, err
		}
		node.Lists = make([]model.ListGraph, 0, len(lists))
		for _, l := range lists {
			ln, err := g.ListNode(ctx, l, model.ListGraphQuery{Items: q.ListItems})
			if err != nil {
				return model.UserGraph{}, err
			}
			node.Lists = append(node.Lists, ln)
		}
	}

	return node, nil
}

func (g *Graph) List(ctx context.Context, id, owner uuid.UUID, q model.ListGraphQuery) (model.ListGraph, error) {
	list, err := g.lists.FindOne(ctx, id, owner)
	if err != nil {
		return model.ListGraph{}, err
	}
	return g.ListNode(ctx, list, q)
}

// ListNode resolves the item count and, if selected, the list items of list.
func (g *Graph) ListNode(ctx context.Context, list model.List, q model.ListGraphQuery) (model.ListGraph, error) {
	node := model.ListGraph{List: list}

	var err error
	if node.TotalItems, err = g.listItems.CountByList(ctx, list.ID); err != nil {
		return model.ListGraph{}, err
	}

	if q.Items != nil {
		node.Items, err = g.listItems.FindAll(ctx, list.ID, list.OwnerID, q.Items.Pagination, q.Items.Search)
		if err != nil {
			return model.ListGraph{}, err
		}
	}

	return node, nil
}
