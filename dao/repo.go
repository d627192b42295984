package dao

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Repo 各实体 DAO 的通用基类
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Create 插入一条记录
func (r Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

// GetByID 按主键查询，不存在时返回 nil
func (r Repo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var m T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// IsExist 按条件判断记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var m T
	var count int64
	err := r.Db.WithContext(ctx).Model(&m).Where(query, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsDuplicateErr 判断是否为唯一键冲突（MySQL / SQLite 两种驱动的报错都覆盖）
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
