package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

// sqlFactory backs the stores with SQLite through GORM.
type sqlFactory struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the database at dsn and migrates the schema.
// Use ":memory:" for an ephemeral database.
func NewSQLite(dsn string) (Factory, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.SwapRequest{}, &model.Notification{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &sqlFactory{db: db}, nil
}

func (f *sqlFactory) Users() UserStore                 { return &userSQLStore{db: f.db} }
func (f *sqlFactory) Requests() RequestStore           { return &requestSQLStore{db: f.db} }
func (f *sqlFactory) Notifications() NotificationStore { return &notificationSQLStore{db: f.db} }

func (f *sqlFactory) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type userSQLStore struct {
	db *gorm.DB
}

func (s *userSQLStore) Create(ctx context.Context, user *model.User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return errors.ErrDatabase.WithCause(err)
	}
	if count > 0 {
		return errors.ErrEmailTaken
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.ErrDatabase.WithCause(err)
	}
	return nil
}

func (s *userSQLStore) Get(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return &user, nil
}

func (s *userSQLStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return &user, nil
}

func (s *userSQLStore) Update(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).Select("*").Omit("id", "created_at").Updates(user)
	if result.Error != nil {
		return errors.ErrDatabase.WithCause(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrUserNotFound
	}
	return nil
}

func (s *userSQLStore) List(ctx context.Context, opts ListUsersOptions) ([]*model.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.User{}).Where("is_public = ?", true)

	if opts.ExcludeID != "" {
		query = query.Where("id <> ?", opts.ExcludeID)
	}
	if opts.Availability != "" && opts.Availability != "all" {
		query = query.Where("availability = ?", opts.Availability)
	}
	if opts.Search != "" {
		// 技能列表按 JSON 文本做模糊匹配
		like := "%" + strings.ToLower(opts.Search) + "%"
		query = query.Where(
			"lower(first_name || ' ' || last_name) LIKE ? OR lower(skills_offered) LIKE ? OR lower(skills_wanted) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.ErrDatabase.WithCause(err)
	}

	var users []*model.User
	query = query.Order("created_at ASC, id ASC")
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, errors.ErrDatabase.WithCause(err)
	}
	return users, total, nil
}

type requestSQLStore struct {
	db *gorm.DB
}

func (s *requestSQLStore) Create(ctx context.Context, req *model.SwapRequest) error {
	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return errors.ErrDatabase.WithCause(err)
	}
	return nil
}

func (s *requestSQLStore) Get(ctx context.Context, id string) (*model.SwapRequest, error) {
	var req model.SwapRequest
	err := s.db.WithContext(ctx).
		Preload("Requester").Preload("Provider").
		Where("id = ?", id).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRequestNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return &req, nil
}

func (s *requestSQLStore) Update(ctx context.Context, req *model.SwapRequest) error {
	result := s.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("id = ?", req.ID).Select("*").Omit("id", "created_at").Updates(req)
	if result.Error != nil {
		return errors.ErrDatabase.WithCause(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrRequestNotFound
	}
	return nil
}

func (s *requestSQLStore) ListByParticipant(ctx context.Context, userID string) ([]*model.SwapRequest, error) {
	var reqs []*model.SwapRequest
	err := s.db.WithContext(ctx).
		Where("requester_id = ? OR provider_id = ?", userID, userID).
		Order("created_at DESC").Find(&reqs).Error
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return reqs, nil
}

type notificationSQLStore struct {
	db *gorm.DB
}

func (s *notificationSQLStore) Create(ctx context.Context, n *model.Notification) error {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return errors.ErrDatabase.WithCause(err)
	}
	return nil
}

func (s *notificationSQLStore) Get(ctx context.Context, id string) (*model.Notification, error) {
	var n model.Notification
	err := s.db.WithContext(ctx).Preload("From").Where("id = ?", id).First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return &n, nil
}

func (s *notificationSQLStore) Update(ctx context.Context, n *model.Notification) error {
	result := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", n.ID).Select("*").Omit("id", "created_at").Updates(n)
	if result.Error != nil {
		return errors.ErrDatabase.WithCause(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (s *notificationSQLStore) List(ctx context.Context, opts ListNotificationsOptions) ([]*model.Notification, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("recipient_id = ?", opts.RecipientID)
	if opts.Status != "" && opts.Status != "all" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.ErrDatabase.WithCause(err)
	}

	var items []*model.Notification
	query = query.Preload("From").Order("created_at DESC, id ASC")
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, errors.ErrDatabase.WithCause(err)
	}
	return items, total, nil
}
