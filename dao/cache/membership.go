package cache

import (
	"context"
	"fmt"

	"Foodgram/types"

	"github.com/redis/go-redis/v9"
)

// MembershipStorage 用户收藏/购物车成员关系的 Redis 集合缓存，
// 只做读加速，写失败不影响主流程
type MembershipStorage struct {
	redis *redis.Client
}

func NewMembershipStorage(rds *redis.Client) *MembershipStorage {
	return &MembershipStorage{redis: rds}
}

// Add 记录用户把菜谱加进了列表
// @params kind     列表类型
// @params uid      用户ID
// @params recipeID 菜谱ID
func (m *MembershipStorage) Add(ctx context.Context, kind types.ListKind, uid, recipeID int64) {
	_ = m.redis.SAdd(ctx, m.key(kind, uid), recipeID).Err()
}

// Remove 记录用户把菜谱移出了列表
func (m *MembershipStorage) Remove(ctx context.Context, kind types.ListKind, uid, recipeID int64) {
	_ = m.redis.SRem(ctx, m.key(kind, uid), recipeID).Err()
}

// IsMember 查缓存里菜谱是否在用户列表中，err 非空时调用方应回源数据库
func (m *MembershipStorage) IsMember(ctx context.Context, kind types.ListKind, uid, recipeID int64) (bool, error) {
	return m.redis.SIsMember(ctx, m.key(kind, uid), recipeID).Result()
}

func (m *MembershipStorage) key(kind types.ListKind, uid int64) string {
	return fmt.Sprintf("user:%s:recipes:%d", kind, uid)
}
