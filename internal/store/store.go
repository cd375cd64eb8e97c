package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"visitation-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	// Live meeting table.
	ListMeetings(ctx context.Context) ([]model.Meeting, error)
	ListMeetingsByDate(ctx context.Context, date string) ([]model.Meeting, error)
	ListMeetingsAfter(ctx context.Context, date string) ([]model.Meeting, error)
	GetMeeting(ctx context.Context, id int64) (model.Meeting, error)
	CreateMeeting(ctx context.Context, m *model.Meeting) error
	SaveMeeting(ctx context.Context, m *model.Meeting) error
	DeleteMeeting(ctx context.Context, id int64) error

	// Archive table.
	ArchiveMeeting(ctx context.Context, m model.Meeting, archived *model.ArchivedMeeting) error
	ListArchivedMeetings(ctx context.Context) ([]model.ArchivedMeeting, error)

	// Criminal records.
	ListCriminals(ctx context.Context) ([]model.Criminal, error)
	CreateCriminal(ctx context.Context, cr *model.Criminal) error
	DeleteCriminal(ctx context.Context, id int64) error

	// Staff accounts.
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	Ping(ctx context.Context) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	var meetings []model.Meeting
	if err := s.db.WithContext(ctx).Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

func (s *gormStore) ListMeetingsByDate(ctx context.Context, date string) ([]model.Meeting, error) {
	var meetings []model.Meeting
	if err := s.db.WithContext(ctx).Where("scheduled_date = ?", date).Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings for %s: %w", date, err)
	}
	return meetings, nil
}

// ListMeetingsAfter returns meetings scheduled strictly after date.
func (s *gormStore) ListMeetingsAfter(ctx context.Context, date string) ([]model.Meeting, error) {
	var meetings []model.Meeting
	if err := s.db.WithContext(ctx).Where("scheduled_date > ?", date).Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings after %s: %w", date, err)
	}
	return meetings, nil
}

func (s *gormStore) GetMeeting(ctx context.Context, id int64) (model.Meeting, error) {
	var m model.Meeting
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return model.Meeting{}, err
	}
	return m, nil
}

func (s *gormStore) CreateMeeting(ctx context.Context, m *model.Meeting) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

func (s *gormStore) SaveMeeting(ctx context.Context, m *model.Meeting) error {
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("failed to save meeting %d: %w", m.ID, err)
	}
	return nil
}

// DeleteMeeting removes a live meeting unconditionally. Deleting an absent
// id is not an error.
func (s *gormStore) DeleteMeeting(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&model.Meeting{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete meeting %d: %w", id, err)
	}
	return nil
}

// ArchiveMeeting moves a meeting from the live table into the archive in a
// single transaction: status write, archive insert, live delete. A failure
// anywhere rolls the whole move back, so the meeting is never duplicated or
// lost across the two tables.
func (s *gormStore) ArchiveMeeting(ctx context.Context, m model.Meeting, archived *model.ArchivedMeeting) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Meeting{}).Where("id = ?", m.ID).Update("status", m.Status).Error; err != nil {
			return fmt.Errorf("failed to write terminal status for meeting %d: %w", m.ID, err)
		}
		if err := tx.Create(archived).Error; err != nil {
			return fmt.Errorf("failed to insert archive record for meeting %d: %w", m.ID, err)
		}
		if err := tx.Delete(&model.Meeting{}, m.ID).Error; err != nil {
			return fmt.Errorf("failed to delete live meeting %d: %w", m.ID, err)
		}
		return nil
	})
}

func (s *gormStore) ListArchivedMeetings(ctx context.Context) ([]model.ArchivedMeeting, error) {
	var archived []model.ArchivedMeeting
	if err := s.db.WithContext(ctx).Find(&archived).Error; err != nil {
		return nil, fmt.Errorf("failed to list archived meetings: %w", err)
	}
	return archived, nil
}

func (s *gormStore) ListCriminals(ctx context.Context) ([]model.Criminal, error) {
	var criminals []model.Criminal
	if err := s.db.WithContext(ctx).Find(&criminals).Error; err != nil {
		return nil, fmt.Errorf("failed to list criminals: %w", err)
	}
	return criminals, nil
}

func (s *gormStore) CreateCriminal(ctx context.Context, cr *model.Criminal) error {
	if err := s.db.WithContext(ctx).Create(cr).Error; err != nil {
		return fmt.Errorf("failed to create criminal record: %w", err)
	}
	return nil
}

// DeleteCriminal removes a criminal record, reporting
// gorm.ErrRecordNotFound when the id does not exist.
func (s *gormStore) DeleteCriminal(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Criminal{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete criminal record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *gormStore) CreateUser(ctx context.Context, u *model.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *gormStore) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
