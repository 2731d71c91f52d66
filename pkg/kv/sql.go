package kv

import (
	"context"
	"errors"

	"github.com/angelmondragon/applestore-backend/pkg/db"
	"github.com/angelmondragon/applestore-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQL persists payloads as rows of the kv_entries table.
type SQL struct {
	client *db.Client
}

func NewSQL(client *db.Client) *SQL {
	return &SQL{client: client}
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.client.DB().WithContext(ctx).Where("key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	return upsert(s.client.DB().WithContext(ctx), key, value)
}

// SetMany writes every entry in one transaction.
func (s *SQL) SetMany(ctx context.Context, entries map[string]string) error {
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		for key, value := range entries {
			if err := upsert(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func upsert(conn *gorm.DB, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
