package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type txTestRecord struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50"`
}

func setupTxTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&txTestRecord{}))
	return gdb
}

func TestTransactionManager_RunInTransaction(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		gdb := setupTxTestDB(t)
		tm := NewTransactionManager(gdb)

		err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
			tx := GetTxFromContext(ctx, gdb)
			return tx.Create(&txTestRecord{Name: "committed"}).Error
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, gdb.Model(&txTestRecord{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		gdb := setupTxTestDB(t)
		tm := NewTransactionManager(gdb)

		err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
			tx := GetTxFromContext(ctx, gdb)
			if err := tx.Create(&txTestRecord{Name: "rolled back"}).Error; err != nil {
				return err
			}
			return fmt.Errorf("boom")
		})
		require.Error(t, err)

		var count int64
		require.NoError(t, gdb.Model(&txTestRecord{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("statements inside fn share one transaction", func(t *testing.T) {
		gdb := setupTxTestDB(t)
		tm := NewTransactionManager(gdb)

		err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
			tx := GetTxFromContext(ctx, gdb)
			if err := tx.Create(&txTestRecord{Name: "first"}).Error; err != nil {
				return err
			}

			// The uncommitted row is visible to the same transaction.
			var count int64
			if err := GetTxFromContext(ctx, gdb).Model(&txTestRecord{}).Count(&count).Error; err != nil {
				return err
			}
			assert.Equal(t, int64(1), count)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestGetTxFromContext_WithoutTransaction(t *testing.T) {
	gdb := setupTxTestDB(t)

	tx := GetTxFromContext(context.Background(), gdb)
	require.NotNil(t, tx)
	assert.NoError(t, tx.Create(&txTestRecord{Name: "direct"}).Error)
}
