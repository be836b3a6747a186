package model

import (
	"time"

	"gorm.io/gorm"
)

// Status is the lifecycle state of a swap request.
type Status string

const (
	// StatusPending is the initial state of every swap request.
	StatusPending Status = "pending"

	// StatusAccepted means the provider agreed to the exchange.
	StatusAccepted Status = "accepted"

	// StatusRejected means the provider declined. Terminal.
	StatusRejected Status = "rejected"

	// StatusCompleted means the session took place. Terminal.
	StatusCompleted Status = "completed"
)

// IsTerminal reports whether no further status transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Role identifies which side of a swap request an actor is on.
type Role int

const (
	// RoleNone means the actor is not a participant.
	RoleNone Role = iota

	// RoleRequester is the user who initiated the request.
	RoleRequester

	// RoleProvider is the user asked to teach the requested skill.
	RoleProvider
)

// Feedback is the post-completion rating attached to a swap request.
type Feedback struct {
	Rating  int    `json:"rating" gorm:"comment:评分(1-5)"`
	Comment string `json:"comment" gorm:"size:1024;comment:评价内容"`
}

// SwapRequest is one proposed exchange of a taught skill for a taught skill.
// The message is set at creation and immutable thereafter; all other mutation
// goes through the lifecycle transitions.
type SwapRequest struct {
	ID             string         `json:"id" gorm:"primaryKey;size:26;comment:请求ID(ULID)"`
	RequesterID    string         `json:"requester_id" gorm:"size:26;index:idx_requester;comment:发起者ID"`
	ProviderID     string         `json:"provider_id" gorm:"size:26;index:idx_provider;comment:提供者ID"`
	Requester      *User          `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
	Provider       *User          `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	RequestedSkill string         `json:"requested_skill" gorm:"size:128;comment:请求学习的技能"`
	OfferedSkill   string         `json:"offered_skill" gorm:"size:128;comment:交换提供的技能"`
	Status         Status         `json:"status" gorm:"size:16;index:idx_status;comment:状态"`
	Message        string         `json:"message" gorm:"size:2048;comment:发起时留言"`
	CreatedAt      time.Time      `json:"created_at" gorm:"comment:创建时间"`
	ScheduledDate  *time.Time     `json:"scheduled_date,omitempty" gorm:"comment:约定时间"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty" gorm:"comment:完成时间"`
	Feedback       *Feedback      `json:"feedback,omitempty" gorm:"embedded;embeddedPrefix:feedback_"`
	FeedbackGiven  bool           `json:"feedback_given" gorm:"default:false;comment:是否已提交反馈"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for GORM.
func (r *SwapRequest) TableName() string {
	return "swap_requests"
}

// RoleOf returns the role the given user plays in this request.
func (r *SwapRequest) RoleOf(userID string) Role {
	switch userID {
	case r.RequesterID:
		return RoleRequester
	case r.ProviderID:
		return RoleProvider
	default:
		return RoleNone
	}
}
