package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/promoshopcl/promoshop-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// snapshotRow is the single-table layout backing the SQLite store.
type snapshotRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Blob      []byte    `gorm:"column:blob;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (snapshotRow) TableName() string {
	return "snapshots"
}

// SQLite persists snapshots into a local database file. It is the default
// backend: client-local durable storage that survives restarts.
type SQLite struct {
	conn *gorm.DB
}

// NewSQLite opens (or creates) the database at path and migrates the
// snapshot table.
func NewSQLite(ctx context.Context, path string, logg *logger.Logger) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	silent := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 silent,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrating snapshot table: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "sqlite snapshot store ready")
	}
	return &SQLite{conn: conn}, nil
}

func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	var row snapshotRow
	err := s.conn.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	return row.Blob, nil
}

func (s *SQLite) Save(ctx context.Context, key string, blob []byte) error {
	row := snapshotRow{Key: key, Blob: blob, UpdatedAt: time.Now().UTC()}
	if err := s.conn.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}

// Close shuts down the underlying connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
