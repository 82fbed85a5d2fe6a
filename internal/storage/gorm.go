package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type kvEntry struct {
	Key       string `gorm:"column:kv_key;primaryKey;size:255"`
	Value     []byte `gorm:"column:kv_value;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// GormStorage persists keys as rows of a single PostgreSQL table.
type GormStorage struct {
	db *gorm.DB
}

// OpenPostgres connects with the connection pool settings used across the
// service.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("storage: get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &GormStorage{db: db}, nil
}

func (g *GormStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var e kvEntry
	if err := g.db.WithContext(ctx).
		Where("kv_key = ?", key).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e.Value, nil
}

func (g *GormStorage) Set(ctx context.Context, key string, value []byte) error {
	return upsert(g.db.WithContext(ctx), key, value)
}

func (g *GormStorage) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).
		Where("kv_key = ?", key).
		Delete(&kvEntry{}).Error
}

func (g *GormStorage) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return g.UpdateMany(ctx, []string{key}, single(fn))
}

// UpdateMany runs inside one transaction on one connection. Row locks do not
// cover keys that have no row yet, so each key also takes a transaction
// scoped advisory lock, in sorted order.
func (g *GormStorage) UpdateMany(ctx context.Context, keys []string, fn UpdateManyFunc) error {
	if err := checkKeys(keys); err != nil {
		return err
	}

	ordered := append([]string(nil), keys...)
	sort.Strings(ordered)

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range ordered {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", k).Error; err != nil {
				return err
			}
		}

		var rows []kvEntry
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("kv_key IN ?", keys).
			Order("kv_key").
			Find(&rows).Error; err != nil {
			return err
		}

		byKey := make(map[string][]byte, len(rows))
		for _, r := range rows {
			byKey[r.Key] = r.Value
		}

		current := make([][]byte, len(keys))
		for i, k := range keys {
			current[i] = byKey[k]
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		if err := checkResult(keys, next); err != nil {
			return err
		}

		for i, k := range keys {
			if next[i] == nil {
				if err := tx.Where("kv_key = ?", k).Delete(&kvEntry{}).Error; err != nil {
					return err
				}
				continue
			}
			if err := upsert(tx, k, next[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *GormStorage) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func upsert(db *gorm.DB, key string, value []byte) error {
	return db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kv_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
		}).
		Create(&kvEntry{Key: key, Value: value}).Error
}
