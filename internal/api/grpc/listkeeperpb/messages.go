// Package listkeeperpb holds the listkeeper wire messages, service
// descriptors and clients. Messages travel as JSON, see package codec.
package listkeeperpb

import (
	"time"

	"github.com/goccy/go-json"
)

// PageRequest selects a page of a collection and an optional name search.
type PageRequest struct {
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Search string `json:"search,omitempty" validate:"max=200"`
}

// IDRequest addresses a single entity.
type IDRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type RevalidateRequest struct{}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Roles        []string  `json:"roles"`
	IsActive     bool      `json:"is_active"`
	LastUpdateBy string    `json:"last_update_by,omitempty"`
	ItemCount    *int      `json:"item_count,omitempty"`
	ListCount    *int      `json:"list_count,omitempty"`
	Items        []*Item   `json:"items,omitempty"`
	Lists        []*List   `json:"lists,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListUsersRequest struct {
	Roles []string     `json:"roles,omitempty" validate:"dive,oneof=user admin superUser"`
	Page  *PageRequest `json:"page,omitempty"`
}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

// GetUserRequest loads a user with its counts. Non-nil pages also load the
// user's items, lists and the list items of each list.
type GetUserRequest struct {
	ID        string       `json:"id" validate:"required,uuid"`
	Items     *PageRequest `json:"items,omitempty"`
	Lists     *PageRequest `json:"lists,omitempty"`
	ListItems *PageRequest `json:"list_items,omitempty"`
}

type UpdateUserRequest struct {
	ID       string   `json:"id" validate:"required,uuid"`
	Email    *string  `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string  `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Password *string  `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Roles    []string `json:"roles,omitempty" validate:"omitempty,dive,oneof=user admin superUser"`
	IsActive *bool    `json:"is_active,omitempty"`
}

type Item struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Quantity      float64   `json:"quantity"`
	QuantityUnits *string   `json:"quantity_units,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateItemRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Quantity      float64 `json:"quantity" validate:"gt=0"`
	QuantityUnits *string `json:"quantity_units,omitempty" validate:"omitempty,max=50"`
}

type UpdateItemRequest struct {
	ID            string   `json:"id" validate:"required,uuid"`
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Quantity      *float64 `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	QuantityUnits *string  `json:"quantity_units,omitempty" validate:"omitempty,max=50"`
}

type ListItemsRequest struct {
	Page *PageRequest `json:"page,omitempty"`
}

type ItemsResponse struct {
	Items []*Item `json:"items"`
}

type List struct {
	ID         string      `json:"id"`
	OwnerID    string      `json:"owner_id"`
	Name       string      `json:"name"`
	TotalItems *int        `json:"total_items,omitempty"`
	Items      []*ListItem `json:"items,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CreateListRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type UpdateListRequest struct {
	ID   string  `json:"id" validate:"required,uuid"`
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
}

// ListListsRequest pages through the caller's lists. A non-nil Items page
// also loads the list items of each list.
type ListListsRequest struct {
	Page  *PageRequest `json:"page,omitempty"`
	Items *PageRequest `json:"items,omitempty"`
}

type ListsResponse struct {
	Lists []*List `json:"lists"`
}

type GetListRequest struct {
	ID    string       `json:"id" validate:"required,uuid"`
	Items *PageRequest `json:"items,omitempty"`
}

type ListExport struct {
	ListID     string    `json:"list_id"`
	Key        string    `json:"key"`
	Size       int64     `json:"size"`
	ExportedAt time.Time `json:"exported_at"`
}

type ListExportData struct {
	ListID string          `json:"list_id"`
	Data   json.RawMessage `json:"data"`
}

type ListItem struct {
	ID        string    `json:"id"`
	ListID    string    `json:"list_id"`
	Quantity  int       `json:"quantity"`
	Completed bool      `json:"completed"`
	Item      *Item     `json:"item"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateListItemRequest struct {
	ListID    string `json:"list_id" validate:"required,uuid"`
	ItemID    string `json:"item_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Completed bool   `json:"completed"`
}

type UpdateListItemRequest struct {
	ID        string  `json:"id" validate:"required,uuid"`
	ListID    *string `json:"list_id,omitempty" validate:"omitempty,uuid"`
	ItemID    *string `json:"item_id,omitempty" validate:"omitempty,uuid"`
	Quantity  *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Completed *bool   `json:"completed,omitempty"`
}

type ListListItemsRequest struct {
	ListID string       `json:"list_id" validate:"required,uuid"`
	Page   *PageRequest `json:"page,omitempty"`
}

type ListItemsResponse struct {
	ListItems []*ListItem `json:"list_items"`
}
