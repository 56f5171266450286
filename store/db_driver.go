package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBDriver stores one row per (bucket, key) in table hstore_entry.
type DBDriver struct {
	Driver
	db *gorm.DB
}

type Entry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Bucket    string    `json:"bucket" gorm:"type:varchar(128);uniqueIndex:idx_bucket_key"`
	Key       string    `json:"key" gorm:"type:varchar(255);uniqueIndex:idx_bucket_key"`
	Value     string    `json:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Entry) TableName() string {
	return "hstore_entry"
}

func NewDBDriver(db *gorm.DB) *DBDriver {
	return &DBDriver{db: db}
}

func (r *DBDriver) Init() error {
	hasTable := r.db.Migrator().HasTable(&Entry{})
	if !hasTable {
		return r.db.AutoMigrate(&Entry{})
	}
	return nil
}

func (r *DBDriver) Get(ctx context.Context, bucket, key string) (*string, error) {
	var entry Entry
	err := r.db.WithContext(ctx).
		Where(map[string]any{"bucket": bucket, "key": key}).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry.Value, nil
}

func (r *DBDriver) Set(ctx context.Context, bucket, key string, value string) error {
	entry := &Entry{
		Bucket:    bucket,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bucket"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error
}

func (r *DBDriver) Del(ctx context.Context, bucket, key string) error {
	return r.db.WithContext(ctx).
		Where(map[string]any{"bucket": bucket, "key": key}).
		Delete(&Entry{}).Error
}

func (r *DBDriver) GetAll(ctx context.Context, bucket string) (map[string]string, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where(map[string]any{"bucket": bucket}).
		Order("id asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		values[entry.Key] = entry.Value
	}
	return values, nil
}
