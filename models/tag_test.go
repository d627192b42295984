package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTagTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Tag{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestTagColorValidatedOnSave(t *testing.T) {
	db := newTagTestDB(t)

	tests := []struct {
		name  string
		color string
		ok    bool
	}{
		{"breakfast", "#49B64E", true},
		{"lunch", "#fff", true},
		{"dinner", "49B64E", false},
		{"snack", "#49B64E0", false},
		{"drink", "#49B6GG", false},
		{"dessert", "", false},
	}
	for _, tt := range tests {
		err := db.Create(&Tag{Name: tt.name, Color: tt.color, Slug: tt.name}).Error
		if tt.ok && err != nil {
			t.Fatalf("color %q should be accepted: %v", tt.color, err)
		}
		if !tt.ok && err == nil {
			t.Fatalf("color %q should be rejected", tt.color)
		}
	}
}

func TestTagColorValidatedOnUpdate(t *testing.T) {
	db := newTagTestDB(t)

	tag := &Tag{Name: "soup", Color: "#E26C2D", Slug: "soup"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	tag.Color = "orange"
	if err := db.Save(tag).Error; err == nil {
		t.Fatal("non-hex color should be rejected on update")
	}
}
