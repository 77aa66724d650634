// Package store keeps the history of launched mirroring sessions in a local
// sqlite database. Each record stores the session in its encoded protocol
// form, so restoring or duplicating a session goes through the same decode
// path as a fresh command line.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Record is one launched session.
type Record struct {
	ID         string    `gorm:"primaryKey" yaml:"id"         json:"id"`
	LaunchedAt time.Time `gorm:"index"      yaml:"launchedAt" json:"launchedAt"`

	// Target is the human-readable identity the session was opened with,
	// e.g. `title:"Media Player"`.
	Target string `yaml:"target" json:"target"`

	// Args is the encoded protocol form of the session configuration.
	Args string `yaml:"args" json:"args"`
}

// Store is a sqlite-backed session history.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the history database location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "winmirror", "history.db"), nil
}

// Open opens (or creates) the history database at path and migrates the
// schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

// Add inserts a record, filling ID and LaunchedAt when unset.
func (s *Store) Add(rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.LaunchedAt.IsZero() {
		rec.LaunchedAt = time.Now()
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("add history record: %w", err)
	}
	return nil
}

// Recent returns the newest records, most recent first.
func (s *Store) Recent(limit int) ([]Record, error) {
	var records []Record
	err := s.db.Order("launched_at desc").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// Last returns the most recent record, nil when the history is empty.
func (s *Store) Last() (*Record, error) {
	var rec Record
	err := s.db.Order("launched_at desc").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read last record: %w", err)
	}
	return &rec, nil
}

// Prune drops everything but the newest keep records. A keep of zero or less
// clears the history.
func (s *Store) Prune(keep int) error {
	if keep <= 0 {
		if err := s.db.Where("1 = 1").Delete(&Record{}).Error; err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		return nil
	}

	newest := s.db.Model(&Record{}).Select("id").Order("launched_at desc").Limit(keep)
	if err := s.db.Where("id NOT IN (?)", newest).Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
