package service

import (
	"context"
	"fmt"
	"testing"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/database"
	"Foodgram/pkg/snowflake"
	"Foodgram/types"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// 测试用内存库，单连接保证所有语句落在同一个库上
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testEnv struct {
	db          *gorm.DB
	users       *UserService
	recipes     *RecipeService
	ingredients *IngredientService
	membership  *MembershipService
	shopping    *ShoppingListService
	follows     *FollowService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		App: &config.App{SummaryMaxLen: config.DefaultSummaryMaxLen},
	}
	policy := &AccessPolicy{}

	userDAO := dao.NewUserDAO(db)
	tagDAO := dao.NewTagDAO(db)
	ingredientDAO := dao.NewIngredientDAO(db)
	recipeDAO := dao.NewRecipeDAO(db)
	membershipDAO := dao.NewMembershipDAO(db)
	followDAO := dao.NewFollowDAO(db)

	membership := &MembershipService{
		MembershipDAO: membershipDAO,
		RecipeDAO:     recipeDAO,
		Policy:        policy,
	}

	return &testEnv{
		db: db,
		users: &UserService{
			UserDAO:   userDAO,
			FollowDAO: followDAO,
			Policy:    policy,
		},
		recipes: &RecipeService{
			Config:        cfg,
			RecipeDAO:     recipeDAO,
			IngredientDAO: ingredientDAO,
			TagDAO:        tagDAO,
			UserDAO:       userDAO,
			MembershipDAO: membershipDAO,
			FollowDAO:     followDAO,
			Membership:    membership,
			Policy:        policy,
		},
		ingredients: &IngredientService{IngredientDAO: ingredientDAO},
		membership:  membership,
		shopping: &ShoppingListService{
			MembershipDAO: membershipDAO,
			Policy:        policy,
		},
		follows: &FollowService{
			FollowDAO: followDAO,
			UserDAO:   userDAO,
			RecipeDAO: recipeDAO,
			Policy:    policy,
		},
	}
}

func (e *testEnv) seedUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           snowflake.GenID(),
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    username,
		LastName:     "Tester",
		PasswordHash: "x",
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

var tagColorSeq int64

func (e *testEnv) seedTag(t *testing.T, name string) *models.Tag {
	t.Helper()
	tagColorSeq++
	tag := &models.Tag{
		Name:  name,
		Color: fmt.Sprintf("#%06x", tagColorSeq), // 只要求互不相同
		Slug:  name,
	}
	if err := e.db.Create(tag).Error; err != nil {
		t.Fatalf("seed tag %s: %v", name, err)
	}
	return tag
}

func (e *testEnv) seedIngredient(t *testing.T, name, unit string) *models.Ingredient {
	t.Helper()
	ing := &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := e.db.Create(ing).Error; err != nil {
		t.Fatalf("seed ingredient %s: %v", name, err)
	}
	return ing
}

func (e *testEnv) seedRecipe(
	t *testing.T,
	authorID int64,
	name string,
	items []types.IngredientAmount,
	tagIDs []int64,
) *types.RecipeView {
	t.Helper()
	view, err := e.recipes.Create(context.Background(), authorID, &types.CreateRecipeRequest{
		Name:        name,
		Text:        "text of " + name,
		CookingTime: 10,
		TagIDs:      tagIDs,
		Ingredients: items,
	})
	if err != nil {
		t.Fatalf("seed recipe %s: %v", name, err)
	}
	return view
}
