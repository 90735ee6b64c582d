package model

// UserGraph is a user with its derived aggregates and, when requested,
// its owned lists and items.
type UserGraph struct {
	User      User
	ItemCount int
	ListCount int
	Items     []Item
	Lists     []ListGraph
}

// ListGraph is a list with its item count and, when requested, its list items.
type ListGraph struct {
	List       List
	TotalItems int
	Items      []ListItem
}

// Page is a paginated, searchable nested selection.
type Page struct {
	Pagination Pagination
	Search     Search
}

// UserGraphQuery selects the nested fields of a user node. Nil pages are not resolved.
type UserGraphQuery struct {
	Items     *Page
	Lists     *Page
	ListItems *Page
}

// ListGraphQuery selects the nested list items of a list node.
type ListGraphQuery struct {
	Items *Page
}
