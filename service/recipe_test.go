package service

import (
	"context"
	"strings"
	"testing"

	"Foodgram/pkg/response"
	"Foodgram/types"
)

func strPtr(s string) *string { return &s }

func bizCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	be, ok := err.(*response.BizError)
	if !ok {
		t.Fatalf("expected *response.BizError, got %T: %v", err, err)
	}
	return be.Code
}

func TestRecipeCreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.seedUser(t, "chef")
	tag1 := env.seedTag(t, "breakfast")
	tag2 := env.seedTag(t, "dinner")
	flour := env.seedIngredient(t, "flour", "g")
	egg := env.seedIngredient(t, "egg", "pcs")

	view, err := env.recipes.Create(ctx, author.ID, &types.CreateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Mix and fry",
		CookingTime: 15,
		TagIDs:      []int64{tag1.ID, tag2.ID},
		Ingredients: []types.IngredientAmount{
			{ID: flour.ID, Amount: 200},
			{ID: egg.ID, Amount: 2},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.Name != "Pancakes" || view.CookingTime != 15 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Author.ID != author.ID || view.Author.Username != "chef" {
		t.Fatalf("unexpected author: %+v", view.Author)
	}
	if len(view.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(view.Tags))
	}

	amounts := map[int64]int{}
	for _, row := range view.Ingredients {
		amounts[row.ID] = row.Amount
	}
	if amounts[flour.ID] != 200 || amounts[egg.ID] != 2 {
		t.Fatalf("unexpected ingredient amounts: %v", amounts)
	}
	if view.IsFavorited || view.IsInShoppingCart {
		t.Fatalf("fresh recipe should not be in any list: %+v", view)
	}
}

func TestRecipeCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.seedUser(t, "chef")
	tag := env.seedTag(t, "lunch")
	flour := env.seedIngredient(t, "flour", "g")

	base := func() *types.CreateRecipeRequest {
		return &types.CreateRecipeRequest{
			Name:        "Bread",
			Text:        "Bake",
			CookingTime: 60,
			TagIDs:      []int64{tag.ID},
			Ingredients: []types.IngredientAmount{{ID: flour.ID, Amount: 500}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*types.CreateRecipeRequest)
		msgPart string
	}{
		{
			name:    "cooking time below one",
			mutate:  func(r *types.CreateRecipeRequest) { r.CookingTime = 0 },
			msgPart: "cooking_time",
		},
		{
			name: "duplicate ingredient",
			mutate: func(r *types.CreateRecipeRequest) {
				r.Ingredients = append(r.Ingredients, types.IngredientAmount{ID: flour.ID, Amount: 100})
			},
			msgPart: "配料重复选择",
		},
		{
			name: "duplicate tag",
			mutate: func(r *types.CreateRecipeRequest) {
				r.TagIDs = append(r.TagIDs, tag.ID)
			},
			msgPart: "标签重复选择",
		},
		{
			name: "amount below one",
			mutate: func(r *types.CreateRecipeRequest) {
				r.Ingredients[0].Amount = 0
			},
			msgPart: "数量不能小于 1",
		},
		{
			name: "unknown ingredient",
			mutate: func(r *types.CreateRecipeRequest) {
				r.Ingredients[0].ID = 999999
			},
			msgPart: "不存在",
		},
		{
			name: "unknown tag",
			mutate: func(r *types.CreateRecipeRequest) {
				r.TagIDs[0] = 999999
			},
			msgPart: "不存在",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.mutate(req)
			_, err := env.recipes.Create(ctx, author.ID, req)
			if code := bizCode(t, err); code != 400 {
				t.Fatalf("expected 400, got %d (%v)", code, err)
			}
			if !strings.Contains(err.Error(), tc.msgPart) {
				t.Fatalf("message %q does not contain %q", err.Error(), tc.msgPart)
			}
		})
	}
}

func TestRecipeCreateRequiresLogin(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.recipes.Create(context.Background(), 0, &types.CreateRecipeRequest{})
	if code := bizCode(t, err); code != 401 {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRecipePartialUpdateKeepsOtherFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.seedUser(t, "chef")
	tag := env.seedTag(t, "soup")
	flour := env.seedIngredient(t, "flour", "g")
	created := env.seedRecipe(t, author.ID, "Original",
		[]types.IngredientAmount{{ID: flour.ID, Amount: 100}}, []int64{tag.ID})

	updated, err := env.recipes.Update(ctx, created.ID, author.ID, &types.UpdateRecipeRequest{
		Name: strPtr("Renamed"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Text != created.Text || updated.CookingTime != created.CookingTime {
		t.Fatalf("scalar fields should keep old values: %+v", updated)
	}
	if len(updated.Ingredients) != 1 || updated.Ingredients[0].Amount != 100 {
		t.Fatalf("ingredients should be untouched: %+v", updated.Ingredients)
	}
	if len(updated.Tags) != 1 {
		t.Fatalf("tags should be untouched: %+v", updated.Tags)
	}
}

func TestRecipeUpdateReplacesRelationLists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.seedUser(t, "chef")
	tag1 := env.seedTag(t, "soup")
	tag2 := env.seedTag(t, "dessert")
	flour := env.seedIngredient(t, "flour", "g")
	sugar := env.seedIngredient(t, "sugar", "g")
	created := env.seedRecipe(t, author.ID, "Cake",
		[]types.IngredientAmount{{ID: flour.ID, Amount: 300}}, []int64{tag1.ID})

	updated, err := env.recipes.Update(ctx, created.ID, author.ID, &types.UpdateRecipeRequest{
		TagIDs:      []int64{tag2.ID},
		Ingredients: []types.IngredientAmount{{ID: sugar.ID, Amount: 50}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Ingredients) != 1 || updated.Ingredients[0].ID != sugar.ID || updated.Ingredients[0].Amount != 50 {
		t.Fatalf("ingredient set not replaced: %+v", updated.Ingredients)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].ID != tag2.ID {
		t.Fatalf("tag set not replaced: %+v", updated.Tags)
	}
}

func TestRecipeUpdateOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.seedUser(t, "chef")
	other := env.seedUser(t, "guest")
	tag := env.seedTag(t, "soup")
	flour := env.seedIngredient(t, "flour", "g")
	created := env.seedRecipe(t, author.ID, "Borscht",
		[]types.IngredientAmount{{ID: flour.ID, Amount: 10}}, []int64{tag.ID})

	_, err := env.recipes.Update(ctx, created.ID, other.ID, &types.UpdateRecipeRequest{
		Name: strPtr("Stolen"),
	})
	if code := bizCode(t, err); code != 403 {
		t.Fatalf("expected 403, got %d", code)
	}

	if err := env.recipes.Delete(ctx, created.ID, other.ID); bizCode(t, err) != 403 {
		t.Fatalf("delete by non-owner should be 403, got %v", err)
	}
}

func TestRecipeDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.seedUser(t, "chef")
	fan := env.seedUser(t, "fan")
	tag := env.seedTag(t, "soup")
	flour := env.seedIngredient(t, "flour", "g")
	created := env.seedRecipe(t, author.ID, "Soup",
		[]types.IngredientAmount{{ID: flour.ID, Amount: 20}}, []int64{tag.ID})

	if _, err := env.membership.Add(ctx, types.ListKindFavorites, fan.ID, created.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if _, err := env.membership.Add(ctx, types.ListKindShoppingCart, fan.ID, created.ID); err != nil {
		t.Fatalf("add cart: %v", err)
	}

	if err := env.recipes.Delete(ctx, created.ID, author.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := env.recipes.Get(ctx, created.ID, author.ID); bizCode(t, err) != 404 {
		t.Fatalf("deleted recipe should be 404, got %v", err)
	}

	for _, table := range []string{"recipe_ingredients", "recipe_tags", "favorites_entries", "shopping_cart_entries"} {
		var n int64
		if err := env.db.Table(table).Where("recipe_id = ?", created.ID).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n != 0 {
			t.Fatalf("%s still has %d orphan rows", table, n)
		}
	}
}

func TestRecipeListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	chef := env.seedUser(t, "chef")
	baker := env.seedUser(t, "baker")
	soup := env.seedTag(t, "soup")
	cake := env.seedTag(t, "cake")
	flour := env.seedIngredient(t, "flour", "g")

	r1 := env.seedRecipe(t, chef.ID, "Soup one",
		[]types.IngredientAmount{{ID: flour.ID, Amount: 1}}, []int64{soup.ID})
	env.seedRecipe(t, baker.ID, "Cake one",
		[]types.IngredientAmount{{ID: flour.ID, Amount: 1}}, []int64{cake.ID})

	byAuthor, err := env.recipes.List(ctx, types.ListRecipesRequest{Author: chef.ID}, 0)
	if err != nil {
		t.Fatalf("list by author: %v", err)
	}
	if byAuthor.Count != 1 || byAuthor.Results[0].ID != r1.ID {
		t.Fatalf("author filter broken: %+v", byAuthor)
	}

	byTag, err := env.recipes.List(ctx, types.ListRecipesRequest{Tags: []string{"soup"}}, 0)
	if err != nil {
		t.Fatalf("list by tag: %v", err)
	}
	if byTag.Count != 1 || byTag.Results[0].ID != r1.ID {
		t.Fatalf("tag filter broken: %+v", byTag)
	}

	fan := env.seedUser(t, "fan")
	if _, err := env.membership.Add(ctx, types.ListKindFavorites, fan.ID, r1.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	favOnly, err := env.recipes.List(ctx, types.ListRecipesRequest{IsFavorited: 1}, fan.ID)
	if err != nil {
		t.Fatalf("list favorited: %v", err)
	}
	if favOnly.Count != 1 || favOnly.Results[0].ID != r1.ID || !favOnly.Results[0].IsFavorited {
		t.Fatalf("favorited filter broken: %+v", favOnly)
	}
}
