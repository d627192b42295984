package service

import (
	"context"
	"testing"

	"Foodgram/models"
)

func TestIngredientSearchRanking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedIngredient(t, "витамин c", "мг")
	env.seedIngredient(t, "минеральная вода", "мл")
	env.seedIngredient(t, "сахар", "г")

	found, err := env.ingredients.Search(ctx, "мин")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(found), found)
	}
	// 前缀命中的排在子串命中之前
	if found[0].Name != "минеральная вода" || found[1].Name != "витамин c" {
		t.Fatalf("unexpected order: %q, %q", found[0].Name, found[1].Name)
	}
}

func TestIngredientSearchEmptyQueryReturnsAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedIngredient(t, "salt", "g")
	env.seedIngredient(t, "pepper", "g")

	found, err := env.ingredients.Search(ctx, "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected all ingredients, got %d", len(found))
	}
}

func TestRankIngredientsCaseInsensitive(t *testing.T) {
	items := []*models.Ingredient{
		{Name: "Tomato paste"},
		{Name: "cherry tomato"},
		{Name: "tomato"},
	}
	rankIngredients(items, "TOMATO")

	// 前缀段和非前缀段内部都按名称（不分大小写）升序
	want := []string{"tomato", "Tomato paste", "cherry tomato"}
	for i, name := range want {
		if items[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, items[i].Name)
		}
	}
}

func TestIngredientGetMissing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.ingredients.Get(context.Background(), 999999)
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("expected 404, got %d", code)
	}
}
