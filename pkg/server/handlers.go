package server

import (
	"Foodgram/handler"
)

type Handlers struct {
	User       *handler.User
	Recipe     *handler.Recipe
	Tag        *handler.Tag
	Ingredient *handler.Ingredient
	List       *handler.List
	Follow     *handler.Follow
}
