//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewTagDAO,
	NewIngredientDAO,
	NewRecipeDAO,
	NewMembershipDAO,
	NewFollowDAO,
)
