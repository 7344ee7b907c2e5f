package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/harentsoaR/tabibi-api/internal/models"
)

// GormStore keeps users and profiles in two relational tables.
type GormStore struct {
	db *gorm.DB
}

// OpenGorm connects to postgres or sqlite and migrates the schema.
func OpenGorm(driver, dsn string, log zerolog.Logger) (*GormStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: dsn})
	default:
		return nil, fmt.Errorf("gorm: unsupported driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(gormWriter{log}, gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open %s: %w", driver, err)
	}
	return NewGormStore(db)
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.User{}, &models.Profile{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(u).Error; err != nil {
			return err
		}
		if u.Profile == nil {
			return nil
		}
		u.Profile.UserID = u.ID
		return tx.Create(u.Profile).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, notFound(err, "user by email")
	}
	return &u, nil
}

func (s *GormStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Preload("Profile").Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, notFound(err, "user by id")
	}
	return &u, nil
}

func (s *GormStore) UpdateAccount(ctx context.Context, id string, upd AccountUpdate) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := map[string]any{
			"name":      upd.Name,
			"user_type": upd.UserType,
		}
		if upd.PasswordHash != "" {
			fields["password"] = upd.PasswordHash
		}
		if upd.Location != nil {
			fields["latitude"] = upd.Location.Latitude
			fields["longitude"] = upd.Location.Longitude
		}

		res := tx.Model(&models.User{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if upd.UserType == models.UserTypeDoctor {
			return upsertProfile(tx, id, upd.Profile)
		}
		return tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("update account: %w", err)
	}
	return err
}

// upsertProfile inserts the profile or, when the user already has one,
// overwrites its fields in the same statement.
func upsertProfile(tx *gorm.DB, userID string, fields models.ProfileFields) error {
	p := models.Profile{UserID: userID}
	fields.Apply(&p)
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"specialization", "address", "working_hours", "phone", "updated_at"}),
	}).Create(&p).Error
}

func (s *GormStore) DeleteUser(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete user: %w", err)
	}
	return err
}

func (s *GormStore) ListDoctors(ctx context.Context, q string) ([]models.User, error) {
	tx := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.*").
		Preload("Profile").
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Where("users.user_type = ?", models.UserTypeDoctor)

	if q = strings.TrimSpace(q); q != "" {
		p := likePattern(q)
		tx = tx.Where(
			`(LOWER(users.name) LIKE ? ESCAPE '\' OR LOWER(profiles.specialization) LIKE ? ESCAPE '\' OR LOWER(users.email) LIKE ? ESCAPE '\')`,
			p, p, p,
		)
	}

	doctors := make([]models.User, 0)
	if err := tx.Order("users.name").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *GormStore) DoctorByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ? AND user_type = ?", id, models.UserTypeDoctor).
		First(&u).Error
	if err != nil {
		return nil, notFound(err, "doctor by id")
	}
	return &u, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// gormWriter routes gorm's own log lines into zerolog.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}
