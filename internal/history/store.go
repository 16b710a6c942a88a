// ABOUTME: Practice history persistence
// ABOUTME: Stores scored attempts in a local sqlite database via gorm
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Attempt is one completed practice run.
type Attempt struct {
	ID           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	Kind         string
	Topic        string
	Title        string
	Correct      int
	Total        int
	AudioSeconds float64
}

// Percent returns the attempt score as a percentage.
func (a Attempt) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total) * 100
}

// Store wraps the sqlite-backed attempt log.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the history database at path and
// migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	if err := db.AutoMigrate(&Attempt{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}

	logrus.WithField("path", path).Debug("history store opened")

	return &Store{db: db}, nil
}

// Save records an attempt, assigning an ID and timestamp if unset.
func (s *Store) Save(a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	if err := s.db.Create(a).Error; err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return nil
}

// Recent returns up to n attempts, newest first.
func (s *Store) Recent(n int) ([]Attempt, error) {
	var attempts []Attempt
	err := s.db.Order("created_at desc").Limit(n).Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}
	return attempts, nil
}

// Stats returns the attempt count and the average score percentage.
func (s *Store) Stats() (count int64, avgPercent float64, err error) {
	if err = s.db.Model(&Attempt{}).Count(&count).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	if count == 0 {
		return 0, 0, nil
	}

	var avg sql.NullFloat64
	row := s.db.Model(&Attempt{}).
		Where("total > 0").
		Select("avg(correct * 100.0 / total)").
		Row()
	if err = row.Scan(&avg); err != nil {
		return count, 0, fmt.Errorf("failed to average scores: %w", err)
	}
	if avg.Valid {
		avgPercent = avg.Float64
	}
	return count, avgPercent, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
