package listkeeperpb

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dtroode/listkeeper-server/internal/api/grpc/codec"
)

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type AuthClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthClient(cc grpc.ClientConnInterface) *AuthClient {
	return &AuthClient{cc: cc}
}

func (c *AuthClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, AuthSignup, in, opts)
}

func (c *AuthClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, AuthLogin, in, opts)
}

func (c *AuthClient) Revalidate(ctx context.Context, in *RevalidateRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, AuthRevalidate, in, opts)
}

type UsersClient struct {
	cc grpc.ClientConnInterface
}

func NewUsersClient(cc grpc.ClientConnInterface) *UsersClient {
	return &UsersClient{cc: cc}
}

func (c *UsersClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, UsersListUsers, in, opts)
}

func (c *UsersClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, UsersGetUser, in, opts)
}

func (c *UsersClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, UsersUpdateUser, in, opts)
}

func (c *UsersClient) BlockUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, UsersBlockUser, in, opts)
}

type ItemsClient struct {
	cc grpc.ClientConnInterface
}

func NewItemsClient(cc grpc.ClientConnInterface) *ItemsClient {
	return &ItemsClient{cc: cc}
}

func (c *ItemsClient) CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*Item, error) {
	return invoke[Item](ctx, c.cc, ItemsCreateItem, in, opts)
}

func (c *ItemsClient) GetItem(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Item, error) {
	return invoke[Item](ctx, c.cc, ItemsGetItem, in, opts)
}

func (c *ItemsClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ItemsResponse, error) {
	return invoke[ItemsResponse](ctx, c.cc, ItemsListItems, in, opts)
}

func (c *ItemsClient) UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*Item, error) {
	return invoke[Item](ctx, c.cc, ItemsUpdateItem, in, opts)
}

func (c *ItemsClient) RemoveItem(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Item, error) {
	return invoke[Item](ctx, c.cc, ItemsRemoveItem, in, opts)
}

type ListsClient struct {
	cc grpc.ClientConnInterface
}

func NewListsClient(cc grpc.ClientConnInterface) *ListsClient {
	return &ListsClient{cc: cc}
}

func (c *ListsClient) CreateList(ctx context.Context, in *CreateListRequest, opts ...grpc.CallOption) (*List, error) {
	return invoke[List](ctx, c.cc, ListsCreateList, in, opts)
}

func (c *ListsClient) GetList(ctx context.Context, in *GetListRequest, opts ...grpc.CallOption) (*List, error) {
	return invoke[List](ctx, c.cc, ListsGetList, in, opts)
}

func (c *ListsClient) ListLists(ctx context.Context, in *ListListsRequest, opts ...grpc.CallOption) (*ListsResponse, error) {
	return invoke[ListsResponse](ctx, c.cc, ListsListLists, in, opts)
}

func (c *ListsClient) UpdateList(ctx context.Context, in *UpdateListRequest, opts ...grpc.CallOption) (*List, error) {
	return invoke[List](ctx, c.cc, ListsUpdateList, in, opts)
}

func (c *ListsClient) RemoveList(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*List, error) {
	return invoke[List](ctx, c.cc, ListsRemoveList, in, opts)
}

func (c *ListsClient) ExportList(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ListExport, error) {
	return invoke[ListExport](ctx, c.cc, ListsExportList, in, opts)
}

func (c *ListsClient) GetListExport(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ListExportData, error) {
	return invoke[ListExportData](ctx, c.cc, ListsGetListExport, in, opts)
}

type ListItemsClient struct {
	cc grpc.ClientConnInterface
}

func NewListItemsClient(cc grpc.ClientConnInterface) *ListItemsClient {
	return &ListItemsClient{cc: cc}
}

func (c *ListItemsClient) CreateListItem(ctx context.Context, in *CreateListItemRequest, opts ...grpc.CallOption) (*ListItem, error) {
	return invoke[ListItem](ctx, c.cc, ListItemsCreateListItem, in, opts)
}

func (c *ListItemsClient) GetListItem(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ListItem, error) {
	return invoke[ListItem](ctx, c.cc, ListItemsGetListItem, in, opts)
}

func (c *ListItemsClient) ListListItems(ctx context.Context, in *ListListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	return invoke[ListItemsResponse](ctx, c.cc, ListItemsListListItems, in, opts)
}

func (c *ListItemsClient) UpdateListItem(ctx context.Context, in *UpdateListItemRequest, opts ...grpc.CallOption) (*ListItem, error) {
	return invoke[ListItem](ctx, c.cc, ListItemsUpdateListItem, in, opts)
}

func (c *ListItemsClient) RemoveListItem(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ListItem, error) {
	return invoke[ListItem](ctx, c.cc, ListItemsRemoveListItem, in, opts)
}
