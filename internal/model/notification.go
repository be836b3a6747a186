package model

import (
	"time"

	"gorm.io/gorm"
)

// NotificationType distinguishes inbox entries. Only swap requests exist today.
type NotificationType string

// NotificationSwapRequest is an incoming swap request notification.
const NotificationSwapRequest NotificationType = "swap_request"

// Notification is one entry in a user's inbox. Its status mirrors the status
// of the swap request it links to.
type Notification struct {
	ID           string           `json:"id" gorm:"primaryKey;size:26;comment:通知ID(ULID)"`
	Type         NotificationType `json:"type" gorm:"size:32;comment:通知类型"`
	RecipientID  string           `json:"recipient_id" gorm:"size:26;index:idx_recipient;comment:接收者ID"`
	FromID       string           `json:"from_id" gorm:"size:26;comment:发送者ID"`
	From         *User            `json:"from,omitempty" gorm:"foreignKey:FromID"`
	RequestID    string           `json:"request_id" gorm:"size:26;index:idx_request;comment:关联的交换请求ID"`
	SkillOffered string           `json:"skill_offered" gorm:"size:128;comment:对方提供的技能"`
	SkillWanted  string           `json:"skill_wanted" gorm:"size:128;comment:对方想学的技能"`
	Message      string           `json:"message" gorm:"size:2048;comment:留言"`
	Status       Status           `json:"status" gorm:"size:16;index:idx_notif_status;comment:关联请求状态"`
	CreatedAt    time.Time        `json:"created_at" gorm:"comment:创建时间"`
	DeletedAt    gorm.DeletedAt   `json:"-" gorm:"index"`
}

// TableName returns the table name for GORM.
func (n *Notification) TableName() string {
	return "notifications"
}
