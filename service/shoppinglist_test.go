package service

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"Foodgram/types"
)

func TestShoppingListAggregation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.seedUser(t, "chef")
	buyer := env.seedUser(t, "buyer")
	tag := env.seedTag(t, "soup")
	flour := env.seedIngredient(t, "flour", "g")
	sugar := env.seedIngredient(t, "sugar", "g")
	egg := env.seedIngredient(t, "egg", "pcs")

	r1 := env.seedRecipe(t, author.ID, "Dough",
		[]types.IngredientAmount{
			{ID: flour.ID, Amount: 200},
			{ID: egg.ID, Amount: 2},
		}, []int64{tag.ID})
	r2 := env.seedRecipe(t, author.ID, "Glaze",
		[]types.IngredientAmount{
			{ID: flour.ID, Amount: 300},
			{ID: sugar.ID, Amount: 50},
		}, []int64{tag.ID})

	for _, id := range []int64{r1.ID, r2.ID} {
		if _, err := env.membership.Add(ctx, types.ListKindShoppingCart, buyer.ID, id); err != nil {
			t.Fatalf("add to cart: %v", err)
		}
	}

	rows, err := env.shopping.Rows(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}

	// 同一配料跨菜谱求和，名称升序，序号从 1 连续
	want := []types.ShoppingListRow{
		{Seq: 1, Name: "egg", Amount: 2, MeasurementUnit: "pcs"},
		{Seq: 2, Name: "flour", Amount: 500, MeasurementUnit: "g"},
		{Seq: 3, Name: "sugar", Amount: 50, MeasurementUnit: "g"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(rows), rows)
	}
	for i, w := range want {
		if rows[i] != w {
			t.Fatalf("row %d: expected %+v, got %+v", i, w, rows[i])
		}
	}
}

func TestShoppingListExportCSV(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.seedUser(t, "chef")
	buyer := env.seedUser(t, "buyer")
	tag := env.seedTag(t, "soup")
	flour := env.seedIngredient(t, "мука", "г")
	recipe := env.seedRecipe(t, author.ID, "Хлеб",
		[]types.IngredientAmount{{ID: flour.ID, Amount: 500}}, []int64{tag.ID})

	if _, err := env.membership.Add(ctx, types.ListKindShoppingCart, buyer.ID, recipe.ID); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	file, err := env.shopping.Export(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	nameRe := regexp.MustCompile(`^shopping_cart_\d{4}_\d{2}_\d{2}_\d{2}_\d{2}_\d{2}\.csv$`)
	if !nameRe.MatchString(file.Filename) {
		t.Fatalf("unexpected filename: %q", file.Filename)
	}

	lines := bytes.Split(file.Content, []byte("\n"))
	if string(lines[0]) != "№,Наименование,Количество,Единицы измерения" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if string(lines[1]) != "1,мука,500,г" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}

func TestShoppingListEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.seedUser(t, "buyer")

	rows, err := env.shopping.Rows(context.Background(), buyer.ID)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty list, got %+v", rows)
	}
}

func TestShoppingListRequiresLogin(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.shopping.Export(context.Background(), 0)
	if code := bizCode(t, err); code != 401 {
		t.Fatalf("expected 401, got %d", code)
	}
}
