package models

import "time"

// Follow 订阅关系
// 唯一键: follower_id + following_id，库层 CHECK 禁止自关注
type Follow struct {
	ID          int64     `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	FollowerID  int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_following,priority:1" json:"follower_id"`
	FollowingID int64     `gorm:"column:following_id;not null;uniqueIndex:uk_follower_following,priority:2;check:prevent_self_follow,follower_id <> following_id" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`

	Follower  *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Following *User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}
