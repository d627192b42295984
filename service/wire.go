package service

import (
	"Foodgram/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(MembershipCache), new(*cache.MembershipStorage)),

	wire.Struct(new(AccessPolicy), "*"),
	wire.Bind(new(IAccessPolicy), new(*AccessPolicy)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(RecipeService), "*"),
	wire.Bind(new(IRecipeService), new(*RecipeService)),

	wire.Struct(new(IngredientService), "*"),
	wire.Bind(new(IIngredientService), new(*IngredientService)),

	wire.Struct(new(MembershipService), "*"),
	wire.Bind(new(IMembershipService), new(*MembershipService)),

	wire.Struct(new(ShoppingListService), "*"),
	wire.Bind(new(IShoppingListService), new(*ShoppingListService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),
)
