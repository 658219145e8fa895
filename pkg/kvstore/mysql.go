package kvstore

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one collection blob persisted in MySQL. The table mirrors
// the blob-per-key layout of the other drivers; the value column holds
// the whole serialized collection.
type Document struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"type:longblob"`
	UpdatedAt time.Time
}

func (Document) TableName() string {
	return "kv_documents"
}

// MySQLStore persists collections through gorm.
type MySQLStore struct {
	db *gorm.DB
}

func NewMySQLStore(db *gorm.DB) (*MySQLStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, err
	}
	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "`key` = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Value, nil
}

func (s *MySQLStore) Set(ctx context.Context, key string, value []byte) error {
	doc := Document{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&doc).Error
}

func (s *MySQLStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Document{}, "`key` = ?", key).Error
}
