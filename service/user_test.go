package service

import (
	"context"
	"testing"

	"Foodgram/models"
	"Foodgram/pkg/utils"
	"Foodgram/types"
)

func TestUserCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	view, err := env.users.Create(ctx, &types.CreateUserRequest{
		Email:     "anna@example.com",
		Username:  "anna",
		FirstName: "Anna",
		LastName:  "K",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.ID == 0 || view.Username != "anna" || view.IsSubscribed {
		t.Fatalf("unexpected view: %+v", view)
	}

	var stored models.User
	if err := env.db.First(&stored, "id = ?", view.ID).Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if !utils.CheckPassword(stored.PasswordHash, "s3cret-pass") {
		t.Fatal("stored hash does not verify")
	}
}

func TestUserCreateDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &types.CreateUserRequest{
		Email:     "anna@example.com",
		Username:  "anna",
		FirstName: "Anna",
		LastName:  "K",
		Password:  "s3cret-pass",
	}
	if _, err := env.users.Create(ctx, req); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := env.users.Create(ctx, req); bizCode(t, err) != 409 {
		t.Fatalf("duplicate signup should be 409, got %v", err)
	}

	// 只撞用户名也一样拒绝
	req2 := *req
	req2.Email = "other@example.com"
	if _, err := env.users.Create(ctx, &req2); bizCode(t, err) != 409 {
		t.Fatalf("duplicate username should be 409, got %v", err)
	}
}

func TestUserGetSubscriptionFlag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	fan := env.seedUser(t, "fan")
	chef := env.seedUser(t, "chef")

	before, err := env.users.Get(ctx, chef.ID, fan.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if before.IsSubscribed {
		t.Fatal("is_subscribed should be false before following")
	}

	if err := env.follows.Follow(ctx, fan.ID, chef.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	after, err := env.users.Get(ctx, chef.ID, fan.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !after.IsSubscribed {
		t.Fatal("is_subscribed should be true after following")
	}
}

func TestUserGetMissing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.users.Get(context.Background(), 999999, 0)
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("expected 404, got %d", code)
	}
}
