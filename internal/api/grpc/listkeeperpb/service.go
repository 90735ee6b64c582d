package listkeeperpb

import (
	"context"
	"path"

	"google.golang.org/grpc"
)

// Full method names, used by interceptors to select per-method behaviour.
const (
	AuthSignup     = "/listkeeper.Auth/Signup"
	AuthLogin      = "/listkeeper.Auth/Login"
	AuthRevalidate = "/listkeeper.Auth/Revalidate"

	UsersListUsers  = "/listkeeper.Users/ListUsers"
	UsersGetUser    = "/listkeeper.Users/GetUser"
	UsersUpdateUser = "/listkeeper.Users/UpdateUser"
	UsersBlockUser  = "/listkeeper.Users/BlockUser"

	ItemsCreateItem = "/listkeeper.Items/CreateItem"
	ItemsGetItem    = "/listkeeper.Items/GetItem"
	ItemsListItems  = "/listkeeper.Items/ListItems"
	ItemsUpdateItem = "/listkeeper.Items/UpdateItem"
	ItemsRemoveItem = "/listkeeper.Items/RemoveItem"

	ListsCreateList    = "/listkeeper.Lists/CreateList"
	ListsGetList       = "/listkeeper.Lists/GetList"
	ListsListLists     = "/listkeeper.Lists/ListLists"
	ListsUpdateList    = "/listkeeper.Lists/UpdateList"
	ListsRemoveList    = "/listkeeper.Lists/RemoveList"
	ListsExportList    = "/listkeeper.Lists/ExportList"
	ListsGetListExport = "/listkeeper.Lists/GetListExport"

	ListItemsCreateListItem = "/listkeeper.ListItems/CreateListItem"
	ListItemsGetListItem    = "/listkeeper.ListItems/GetListItem"
	ListItemsListListItems  = "/listkeeper.ListItems/ListListItems"
	ListItemsUpdateListItem = "/listkeeper.ListItems/UpdateListItem"
	ListItemsRemoveListItem = "/listkeeper.ListItems/RemoveListItem"
)

type AuthServer interface {
	Signup(context.Context, *SignupRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	Revalidate(context.Context, *RevalidateRequest) (*AuthResponse, error)
}

type UsersServer interface {
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	GetUser(context.Context, *GetUserRequest) (*User, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*User, error)
	BlockUser(context.Context, *IDRequest) (*User, error)
}

type ItemsServer interface {
	CreateItem(context.Context, *CreateItemRequest) (*Item, error)
	GetItem(context.Context, *IDRequest) (*Item, error)
	ListItems(context.Context, *ListItemsRequest) (*ItemsResponse, error)
	UpdateItem(context.Context, *UpdateItemRequest) (*Item, error)
	RemoveItem(context.Context, *IDRequest) (*Item, error)
}

type ListsServer interface {
	CreateList(context.Context, *CreateListRequest) (*List, error)
	GetList(context.Context, *GetListRequest) (*List, error)
	ListLists(context.Context, *ListListsRequest) (*ListsResponse, error)
	UpdateList(context.Context, *UpdateListRequest) (*List, error)
	RemoveList(context.Context, *IDRequest) (*List, error)
	ExportList(context.Context, *IDRequest) (*ListExport, error)
	GetListExport(context.Context, *IDRequest) (*ListExportData, error)
}

type ListItemsServer interface {
	CreateListItem(context.Context, *CreateListItemRequest) (*ListItem, error)
	GetListItem(context.Context, *IDRequest) (*ListItem, error)
	ListListItems(context.Context, *ListListItemsRequest) (*ListItemsResponse, error)
	UpdateListItem(context.Context, *UpdateListItemRequest) (*ListItem, error)
	RemoveListItem(context.Context, *IDRequest) (*ListItem, error)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func method[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: path.Base(fullMethod),
		Handler:    unaryHandler(fullMethod, call),
	}
}

var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: "listkeeper.Auth",
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		method(AuthSignup, AuthServer.Signup),
		method(AuthLogin, AuthServer.Login),
		method(AuthRevalidate, AuthServer.Revalidate),
	},
	Metadata: "listkeeper",
}

var UsersServiceDesc = grpc.ServiceDesc{
	ServiceName: "listkeeper.Users",
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		method(UsersListUsers, UsersServer.ListUsers),
		method(UsersGetUser, UsersServer.GetUser),
		method(UsersUpdateUser, UsersServer.UpdateUser),
		method(UsersBlockUser, UsersServer.BlockUser),
	},
	Metadata: "listkeeper",
}

var ItemsServiceDesc = grpc.ServiceDesc{
	ServiceName: "listkeeper.Items",
	HandlerType: (*ItemsServer)(nil),
	Methods: []grpc.MethodDesc{
		method(ItemsCreateItem, ItemsServer.CreateItem),
		method(ItemsGetItem, ItemsServer.GetItem),
		method(ItemsListItems, ItemsServer.ListItems),
		method(ItemsUpdateItem, ItemsServer.UpdateItem),
		method(ItemsRemoveItem, ItemsServer.RemoveItem),
	},
	Metadata: "listkeeper",
}

var ListsServiceDesc = grpc.ServiceDesc{
	ServiceName: "listkeeper.Lists",
	HandlerType: (*ListsServer)(nil),
	Methods: []grpc.MethodDesc{
		method(ListsCreateList, ListsServer.CreateList),
		method(ListsGetList, ListsServer.GetList),
		method(ListsListLists, ListsServer.ListLists),
		method(ListsUpdateList, ListsServer.UpdateList),
		method(ListsRemoveList, ListsServer.RemoveList),
		method(ListsExportList, ListsServer.ExportList),
		method(ListsGetListExport, ListsServer.GetListExport),
	},
	Metadata: "listkeeper",
}

var ListItemsServiceDesc = grpc.ServiceDesc{
	ServiceName: "listkeeper.ListItems",
	HandlerType: (*ListItemsServer)(nil),
	Methods: []grpc.MethodDesc{
		method(ListItemsCreateListItem, ListItemsServer.CreateListItem),
		method(ListItemsGetListItem, ListItemsServer.GetListItem),
		method(ListItemsListListItems, ListItemsServer.ListListItems),
		method(ListItemsUpdateListItem, ListItemsServer.UpdateListItem),
		method(ListItemsRemoveListItem, ListItemsServer.RemoveListItem),
	},
	Metadata: "listkeeper",
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

func RegisterUsersServer(s grpc.ServiceRegistrar, srv UsersServer) {
	s.RegisterService(&UsersServiceDesc, srv)
}

func RegisterItemsServer(s grpc.ServiceRegistrar, srv ItemsServer) {
	s.RegisterService(&ItemsServiceDesc, srv)
}

func RegisterListsServer(s grpc.ServiceRegistrar, srv ListsServer) {
	s.RegisterService(&ListsServiceDesc, srv)
}

func RegisterListItemsServer(s grpc.ServiceRegistrar, srv ListItemsServer) {
	s.RegisterService(&ListItemsServiceDesc, srv)
}
