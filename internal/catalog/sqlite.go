package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sfaram/vidgrid/internal/models"
)

const (
	sqliteMaxOpenConns    = 25
	sqliteMaxIdleConns    = 5
	sqliteConnMaxLifetime = 5 * time.Minute
)

// videoRecord is the videos table row.
type videoRecord struct {
	ID        string    `gorm:"type:text;primaryKey;column:id"`
	URL       string    `gorm:"type:text;not null;column:url"`
	Title     string    `gorm:"type:text;not null;column:title"`
	Category  string    `gorm:"type:text;not null;column:category"`
	Thumbnail string    `gorm:"type:text;column:thumbnail"`
	CreatedAt time.Time `gorm:"type:datetime;not null;column:created_at"`
}

// TableName overrides the GORM table name
func (videoRecord) TableName() string {
	return "videos"
}

func (r *videoRecord) toVideo() models.Video {
	return models.Video{
		ID:        r.ID,
		URL:       r.URL,
		Title:     r.Title,
		Category:  r.Category,
		Thumbnail: r.Thumbnail,
		CreatedAt: r.CreatedAt,
	}
}

// SQLiteStore implements Store over a local SQLite database via GORM.
type SQLiteStore struct {
	db *gorm.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens the database at dbPath and applies migrations from
// migrationsPath (e.g. "file://./migrations").
func NewSQLiteStore(dbPath, migrationsPath string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL", dbPath)

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(sqliteMaxOpenConns)
	sqlDB.SetMaxIdleConns(sqliteMaxIdleConns)
	sqlDB.SetConnMaxLifetime(sqliteConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(sqlDB, migrationsPath); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: gormDB}, nil
}

// runMigrations applies schema migrations using golang-migrate.
func runMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// List returns all entries ordered by creation time descending. The id
// tie-break keeps the order stable for rows created within the same tick.
func (s *SQLiteStore) List(ctx context.Context) ([]models.Video, error) {
	var records []videoRecord
	result := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list videos: %w", result.Error)
	}

	videos := make([]models.Video, 0, len(records))
	for i := range records {
		videos = append(videos, records[i].toVideo())
	}
	return videos, nil
}

// Create inserts a new entry with a generated UUID and server-side timestamp.
func (s *SQLiteStore) Create(ctx context.Context, draft models.VideoDraft) (string, error) {
	record := videoRecord{
		ID:        uuid.NewString(),
		URL:       draft.URL,
		Title:     draft.Title,
		Category:  draft.Category,
		Thumbnail: draft.Thumbnail,
		CreatedAt: time.Now().UTC(),
	}

	result := s.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		return "", fmt.Errorf("failed to create video: %w", result.Error)
	}
	return record.ID, nil
}

// Update replaces the mutable fields of an existing entry.
// Map-based updates so empty strings (cleared thumbnail) are written too.
func (s *SQLiteStore) Update(ctx context.Context, id string, draft models.VideoDraft) error {
	updates := map[string]interface{}{
		"url":       draft.URL,
		"title":     draft.Title,
		"category":  draft.Category,
		"thumbnail": draft.Thumbnail,
	}

	result := s.db.WithContext(ctx).Model(&videoRecord{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entry by id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&videoRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping checks database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
