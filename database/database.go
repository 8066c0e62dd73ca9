// Package database provides persistence-backed implementations of the
// todo.DataSource collaborator.
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// TodoEntry is the persisted form of a single todo item.
type TodoEntry struct {
	gorm.Model
	User string `gorm:"index"`
	Text string
}

// Store is a SQLite-backed todo.DataSource.
type Store struct {
	db *gorm.DB
}

// Open opens the SQLite database at path, creating and migrating it if
// necessary. ":memory:" yields an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.AutoMigrate(&TodoEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate SQLite database: %w", err)
	}
	log.Infof("Database initialized at %s", path)
	return &Store{db: db}, nil
}

// AddTodo stores one todo item for user.
func (s *Store) AddTodo(ctx context.Context, user, text string) error {
	entry := TodoEntry{User: user, Text: text}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// RetrieveTodos returns all of user's items in insertion order.
func (s *Store) RetrieveTodos(ctx context.Context, user string) ([]string, error) {
	var items []string
	err := s.db.WithContext(ctx).
		Model(&TodoEntry{}).
		Where("user = ?", user).
		Order("id").
		Pluck("text", &items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	return items, nil
}

// DeleteTodo removes the oldest stored item whose text matches exactly.
// Deleting text that is not stored is an error.
func (s *Store) DeleteTodo(ctx context.Context, item string) error {
	var entry TodoEntry
	if err := s.db.WithContext(ctx).Where("text = ?", item).Order("id").First(&entry).Error; err != nil {
		return fmt.Errorf("failed to locate entry %q: %w", item, err)
	}
	if err := s.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		return fmt.Errorf("failed to delete entry %q: %w", item, err)
	}
	return nil
}
