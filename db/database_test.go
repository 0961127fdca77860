package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylino/storefront/config"
	"github.com/stylino/storefront/db"
	"github.com/stylino/storefront/model"
)

func TestOpenDatabaseSQLite(t *testing.T) {
	database, err := db.OpenDatabase(config.DatabaseConfiguration{
		Driver: "sqlite",
		DSN:    "file:opendb?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.CloseDatabase(database) })

	require.NoError(t, db.Migrate(database))
	for _, table := range []any{&model.User{}, &model.Category{}, &model.Product{}, &model.Setting{}, &model.AffiliateCommission{}} {
		assert.True(t, database.Migrator().HasTable(table))
	}
}

func TestOpenDatabaseUnsupportedDriver(t *testing.T) {
	_, err := db.OpenDatabase(config.DatabaseConfiguration{Driver: "oracle"})
	assert.Error(t, err)
}
