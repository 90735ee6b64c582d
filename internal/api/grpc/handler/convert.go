package handler

import (
	"github.com/google/uuid"

	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/model"
)

func toPage(p *pb.PageRequest) (model.Pagination, model.Search) {
	if p == nil {
		return model.Pagination{}, model.Search{}
	}
	return model.Pagination{Limit: p.Limit, Offset: p.Offset}, model.Search{Term: p.Search}
}

// toGraphPage keeps nil as "field not requested".
func toGraphPage(p *pb.PageRequest) *model.Page {
	if p == nil {
		return nil
	}
	pagination, search := toPage(p)
	return &model.Page{Pagination: pagination, Search: search}
}

func toRoles(roles []string) []model.Role {
	if len(roles) == 0 {
		return nil
	}
	out := make([]model.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, model.Role(r))
	}
	return out
}

func fromRoles(roles []model.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func toUser(u model.User) *pb.User {
	out := &pb.User{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Roles:     fromRoles(u.Roles),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.LastUpdateBy != nil && *u.LastUpdateBy != uuid.Nil {
		out.LastUpdateBy = u.LastUpdateBy.String()
	}
	return out
}

func toUserGraph(g model.UserGraph) *pb.User {
	out := toUser(g.User)
	out.ItemCount = &g.ItemCount
	out.ListCount = &g.ListCount
	if g.Items != nil {
		out.Items = toItems(g.Items)
	}
	if g.Lists != nil {
		out.Lists = make([]*pb.List, 0, len(g.Lists))
		for _, l := range g.Lists {
			out.Lists = append(out.Lists, toListGraph(l))
		}
	}
	return out
}

func toItem(i model.Item) *pb.Item {
	return &pb.Item{
		ID:            i.ID.String(),
		OwnerID:       i.OwnerID.String(),
		Name:          i.Name,
		Quantity:      i.Quantity,
		QuantityUnits: i.QuantityUnits,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toItems(items []model.Item) []*pb.Item {
	out := make([]*pb.Item, 0, len(items))
	for _, i := range items {
		out = append(out, toItem(i))
	}
	return out
}

func toList(l model.List) *pb.List {
	return &pb.List{
		ID:        l.ID.String(),
		OwnerID:   l.OwnerID.String(),
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toListGraph(g model.ListGraph) *pb.List {
	out := toList(g.List)
	out.TotalItems = &g.TotalItems
	if g.Items != nil {
		out.Items = toListItems(g.Items)
	}
	return out
}

func toListItem(li model.ListItem) *pb.ListItem {
	return &pb.ListItem{
		ID:        li.ID.String(),
		ListID:    li.ListID.String(),
		Quantity:  li.Quantity,
		Completed: li.Completed,
		Item:      toItem(li.Item),
		CreatedAt: li.CreatedAt,
		UpdatedAt: li.UpdatedAt,
	}
}

func toListItems(items []model.ListItem) []*pb.ListItem {
	out := make([]*pb.ListItem, 0, len(items))
	for _, li := range items {
		out = append(out, toListItem(li))
	}
	return out
}
