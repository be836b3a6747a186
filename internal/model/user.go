// Package model defines the shared data models for skillswap.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a member of the skill-exchange directory.
type User struct {
	ID           string         `json:"id" gorm:"primaryKey;size:26;comment:用户ID(ULID)"`
	Email        string         `json:"email" gorm:"size:128;not null;uniqueIndex:uk_email;comment:邮箱"`
	Password     string         `json:"-" gorm:"size:255;comment:密码Hash"`
	FirstName    string         `json:"first_name" gorm:"size:64;comment:名"`
	LastName     string         `json:"last_name" gorm:"size:64;comment:姓"`
	Location     string         `json:"location" gorm:"size:128;comment:所在地"`
	ProfilePhoto string         `json:"profile_photo" gorm:"size:255;comment:头像URL"`
	SkillsOffered StringList    `json:"skills_offered" gorm:"type:text;comment:可教技能"`
	SkillsWanted  StringList    `json:"skills_wanted" gorm:"type:text;comment:想学技能"`
	Availability string         `json:"availability" gorm:"size:32;index:idx_availability;comment:空闲时段"`
	Rating       float64        `json:"rating" gorm:"comment:平均评分"`
	TotalRatings int            `json:"total_ratings" gorm:"comment:评分次数"`
	IsPublic     bool           `json:"is_public" gorm:"default:true;index:idx_public;comment:资料是否公开"`
	IsVerified   bool           `json:"is_verified" gorm:"default:false;comment:邮箱是否已验证"`
	CreatedAt    int64          `json:"created_at" gorm:"autoCreateTime:milli;comment:创建时间(时间戳)"`
	UpdatedAt    int64          `json:"updated_at" gorm:"autoUpdateTime:milli;comment:更新时间(时间戳)"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index;comment:软删除时间"`
}

// UserList contains a list of users and pagination info.
type UserList struct {
	TotalCount int64   `json:"totalCount"`
	Items      []*User `json:"items"`
}

// TableName returns the table name for GORM.
func (u *User) TableName() string {
	return "users"
}

// BeforeCreate sets the CreatedAt and UpdatedAt fields.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now().UnixMilli()
	u.CreatedAt = now
	u.UpdatedAt = now
	return
}

// BeforeUpdate sets the UpdatedAt field.
func (u *User) BeforeUpdate(tx *gorm.DB) (err error) {
	u.UpdatedAt = time.Now().UnixMilli()
	return
}

// Name returns the display name composed from first and last name.
func (u *User) Name() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
