package store

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/skillswap/internal/model"
)

// Fixed ids for demo data so links stay stable across restarts.
const (
	SeedUserAlex    = "01JGB4M0000000000000000000"
	SeedUserMarc    = "01JGB4M0000000000000000001"
	SeedUserMichell = "01JGB4M0000000000000000002"
	SeedUserJoe     = "01JGB4M0000000000000000003"
	SeedUserSarahJ  = "01JGB4M0000000000000000004"
	SeedUserDavid   = "01JGB4M0000000000000000005"
	SeedUserEmma    = "01JGB4M0000000000000000006"
	SeedUserNayan   = "01JGB4M0000000000000000007"
	SeedUserSarahW  = "01JGB4M0000000000000000008"
	SeedUserMikeJ   = "01JGB4M0000000000000000009"

	SeedRequestPending   = "01JGB4RQ000000000000000001"
	SeedRequestCompleted = "01JGB4RQ000000000000000002"
	SeedRequestInbox     = "01JGB4RQ000000000000000003"
)

// SeedPassword is the password every demo account accepts.
const SeedPassword = "password123"

// Seed loads the demo dataset: a member directory, two swap requests and an
// inbox for the demo account. Safe to call once on an empty factory.
func Seed(ctx context.Context, f Factory) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	baseMilli := base.UnixMilli()

	users := []*model.User{
		{
			ID: SeedUserAlex, Email: "alex@skillswap.dev", FirstName: "Alex", LastName: "Johnson",
			Location:      "San Francisco, CA",
			SkillsOffered: model.StringList{"JavaScript", "React", "Node.js"},
			SkillsWanted:  model.StringList{"Python", "Machine Learning"},
			Availability:  "Weekends", Rating: 4.8, TotalRatings: 12, IsPublic: true, IsVerified: true,
		},
		{
			ID: SeedUserMarc, Email: "marc@skillswap.dev", FirstName: "Marc", LastName: "Demo",
			SkillsOffered: model.StringList{"Java Script", "Python"},
			SkillsWanted:  model.StringList{"Cooking", "Graphic Design"},
			Availability:  "Weekends", Rating: 3.0, TotalRatings: 5, IsPublic: true,
		},
		{
			ID: SeedUserMichell, Email: "michell@skillswap.dev", FirstName: "Michell",
			SkillsOffered: model.StringList{"Java Script", "Python"},
			SkillsWanted:  model.StringList{"Cooking", "Graphic Design"},
			Availability:  "Evenings", Rating: 2.5, TotalRatings: 5, IsPublic: true,
		},
		{
			ID: SeedUserJoe, Email: "joe@skillswap.dev", FirstName: "Joe", LastName: "Wills",
			SkillsOffered: model.StringList{"Java Script", "Python"},
			SkillsWanted:  model.StringList{"Cooking", "Graphic Design"},
			Availability:  "Weekdays", Rating: 4.0, TotalRatings: 5, IsPublic: true,
		},
		{
			ID: SeedUserSarahJ, Email: "sarah.johnson@skillswap.dev", FirstName: "Sarah", LastName: "Johnson",
			SkillsOffered: model.StringList{"React", "Design"},
			SkillsWanted:  model.StringList{"Photography", "Writing"},
			Availability:  "Weekends", Rating: 4.5, TotalRatings: 12, IsPublic: true,
		},
		{
			ID: SeedUserDavid, Email: "david@skillswap.dev", FirstName: "David", LastName: "Chen",
			SkillsOffered: model.StringList{"Machine Learning", "Data Science"},
			SkillsWanted:  model.StringList{"Guitar", "Spanish"},
			Availability:  "Evenings", Rating: 4.8, TotalRatings: 20, IsPublic: true,
		},
		{
			ID: SeedUserEmma, Email: "emma@skillswap.dev", FirstName: "Emma", LastName: "Wilson",
			SkillsOffered: model.StringList{"Photography", "Photoshop"},
			SkillsWanted:  model.StringList{"Web Development", "Marketing"},
			Availability:  "Flexible", Rating: 4.2, TotalRatings: 8, IsPublic: true,
		},
		{
			ID: SeedUserNayan, Email: "nayan@skillswap.dev", FirstName: "Nayan",
			SkillsOffered: model.StringList{"Python"},
			SkillsWanted:  model.StringList{"Web Development"},
			Availability:  "Evenings", Rating: 3.8, TotalRatings: 4, IsPublic: true,
		},
		{
			ID: SeedUserSarahW, Email: "sarah.wilson@skillswap.dev", FirstName: "Sarah", LastName: "Wilson",
			SkillsOffered: model.StringList{"UI/UX Design"},
			SkillsWanted:  model.StringList{"React"},
			Availability:  "Weekdays", Rating: 4.9, TotalRatings: 18, IsPublic: true,
		},
		{
			ID: SeedUserMikeJ, Email: "mike@skillswap.dev", FirstName: "Mike", LastName: "Johnson",
			SkillsOffered: model.StringList{"Photography"},
			SkillsWanted:  model.StringList{"JavaScript"},
			Availability:  "Flexible", Rating: 4.2, TotalRatings: 9, IsPublic: true,
		},
	}
	for i, u := range users {
		u.Password = string(hash)
		// 按数组顺序错开创建时间，目录排序稳定
		u.CreatedAt = baseMilli + int64(i)
		u.UpdatedAt = u.CreatedAt
		if err := f.Users().Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	completedAt := base.Add(-8 * 24 * time.Hour).Add(2 * time.Hour)
	scheduled := base.Add(-8 * 24 * time.Hour)
	requests := []*model.SwapRequest{
		{
			ID:          SeedRequestPending,
			RequesterID: SeedUserMarc, ProviderID: SeedUserSarahJ,
			RequestedSkill: "Cooking", OfferedSkill: "JavaScript",
			Status:    model.StatusPending,
			Message:   "Hi Sarah! I would love to learn cooking from you. I can teach you JavaScript fundamentals and advanced concepts in return.",
			CreatedAt: base.Add(-10 * 24 * time.Hour),
		},
		{
			ID:          SeedRequestCompleted,
			RequesterID: SeedUserDavid, ProviderID: SeedUserMarc,
			RequestedSkill: "Python", OfferedSkill: "Machine Learning",
			Status:        model.StatusCompleted,
			Message:       "I can teach you Machine Learning concepts and would love to learn Python from you!",
			CreatedAt:     base.Add(-12 * 24 * time.Hour),
			ScheduledDate: &scheduled,
			CompletedAt:   &completedAt,
			Feedback: &model.Feedback{
				Rating:  5,
				Comment: "Excellent session! Marc explained Python concepts very clearly and the examples were practical.",
			},
			FeedbackGiven: true,
		},
		{
			ID:          SeedRequestInbox,
			RequesterID: SeedUserMarc, ProviderID: SeedUserAlex,
			RequestedSkill: "React", OfferedSkill: "Java Script",
			Status:    model.StatusPending,
			Message:   "Hey! I would love to learn React from you. I can teach you advanced JavaScript concepts in return.",
			CreatedAt: base.Add(-2 * time.Hour),
		},
	}
	for _, r := range requests {
		if err := f.Requests().Create(ctx, r); err != nil {
			return fmt.Errorf("seed request %s: %w", r.ID, err)
		}
	}

	notifications := []*model.Notification{
		{
			ID: "01JGB4NT000000000000000001", Type: model.NotificationSwapRequest,
			RecipientID: SeedUserAlex, FromID: SeedUserMarc, RequestID: SeedRequestInbox,
			SkillOffered: "Java Script", SkillWanted: "React",
			Message:   "Hey! I would love to learn React from you. I can teach you advanced JavaScript concepts in return.",
			Status:    model.StatusPending,
			CreatedAt: base.Add(-2 * time.Hour),
		},
		{
			ID: "01JGB4NT000000000000000002", Type: model.NotificationSwapRequest,
			RecipientID: SeedUserAlex, FromID: SeedUserNayan,
			SkillOffered: "Python", SkillWanted: "Web Development",
			Message:   "I'm interested in learning web development. I have 3 years of Python experience.",
			Status:    model.StatusPending,
			CreatedAt: base.Add(-5 * time.Hour),
		},
		{
			ID: "01JGB4NT000000000000000003", Type: model.NotificationSwapRequest,
			RecipientID: SeedUserAlex, FromID: SeedUserSarahW,
			SkillOffered: "UI/UX Design", SkillWanted: "React",
			Message:   "I'd like to exchange my design skills for React development knowledge.",
			Status:    model.StatusAccepted,
			CreatedAt: base.Add(-24 * time.Hour),
		},
		{
			ID: "01JGB4NT000000000000000004", Type: model.NotificationSwapRequest,
			RecipientID: SeedUserAlex, FromID: SeedUserMikeJ,
			SkillOffered: "Photography", SkillWanted: "JavaScript",
			Message:   "Professional photographer looking to learn JavaScript for web projects.",
			Status:    model.StatusRejected,
			CreatedAt: base.Add(-48 * time.Hour),
		},
	}
	for _, n := range notifications {
		if err := f.Notifications().Create(ctx, n); err != nil {
			return fmt.Errorf("seed notification %s: %w", n.ID, err)
		}
	}

	return nil
}
