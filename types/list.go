package types

// ListKind 成员列表类型：收藏 / 购物车
type ListKind string

const (
	ListKindFavorites    ListKind = "favorites"
	ListKindShoppingCart ListKind = "shopping_cart"
)

func (k ListKind) Valid() bool {
	return k == ListKindFavorites || k == ListKindShoppingCart
}
