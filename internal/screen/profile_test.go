package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/session"
	"github.com/kart-io/skillswap/internal/store"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

func TestProfileScreen_EditAndSave(t *testing.T) {
	f := seededFactory(t)
	sess := loggedInSession(t, f)
	toast := &recordingToaster{}
	s := NewProfileScreen(f.Users(), sess, toast)
	ctx := context.Background()

	require.NoError(t, s.Load(ctx))
	assert.False(t, s.Dirty())

	s.SetLocation("Oakland, CA")
	s.AddSkill(SkillsOffered, "  TypeScript  ")
	s.AddSkill(SkillsOffered, "TypeScript") // 重复添加被忽略
	s.AddSkill(SkillsWanted, "")            // 空技能被忽略
	s.RemoveSkill(SkillsWanted, 0)          // 移除 "Python"
	s.ToggleVisibility()
	assert.True(t, s.Dirty())

	p := s.Profile()
	assert.Equal(t, "Oakland, CA", p.Location)
	assert.Equal(t, model.StringList{"JavaScript", "React", "Node.js", "TypeScript"}, p.SkillsOffered)
	assert.Equal(t, model.StringList{"Machine Learning"}, p.SkillsWanted)
	assert.False(t, p.IsPublic)

	require.NoError(t, s.Save(ctx))
	assert.False(t, s.Dirty())

	// 存储与会话都已更新
	stored, err := f.Users().Get(ctx, store.SeedUserAlex)
	require.NoError(t, err)
	assert.Equal(t, "Oakland, CA", stored.Location)
	assert.True(t, stored.SkillsOffered.Contains("TypeScript"))
	assert.Equal(t, "Oakland, CA", sess.Current().Location)

	last, _ := toast.last()
	assert.Equal(t, "Profile updated", last.Message)
}

func TestProfileScreen_LoadDiscardsUnsavedEdits(t *testing.T) {
	f := seededFactory(t)
	s := NewProfileScreen(f.Users(), loggedInSession(t, f), &recordingToaster{})
	ctx := context.Background()

	require.NoError(t, s.Load(ctx))
	s.SetLocation("Nowhere")
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, "San Francisco, CA", s.Profile().Location)
	assert.False(t, s.Dirty())
}

func TestProfileScreen_EditsDoNotLeakBeforeSave(t *testing.T) {
	f := seededFactory(t)
	s := NewProfileScreen(f.Users(), loggedInSession(t, f), &recordingToaster{})
	ctx := context.Background()

	require.NoError(t, s.Load(ctx))
	s.AddSkill(SkillsOffered, "Rust")

	stored, err := f.Users().Get(ctx, store.SeedUserAlex)
	require.NoError(t, err)
	assert.False(t, stored.SkillsOffered.Contains("Rust"), "working copy is isolated until Save")
}

func TestProfileScreen_RequiresLogin(t *testing.T) {
	f := seededFactory(t)
	s := NewProfileScreen(f.Users(), session.New(session.NewMemoryKV()), &recordingToaster{})

	err := s.Load(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrUnauthorized.Code))
	assert.Nil(t, s.Profile())
}

func TestProfileScreen_RemoveSkillOutOfRange(t *testing.T) {
	f := seededFactory(t)
	s := NewProfileScreen(f.Users(), loggedInSession(t, f), &recordingToaster{})
	require.NoError(t, s.Load(context.Background()))

	before := len(s.Profile().SkillsOffered)
	s.RemoveSkill(SkillsOffered, 99)
	s.RemoveSkill(SkillsOffered, -1)
	assert.Len(t, s.Profile().SkillsOffered, before)
}
