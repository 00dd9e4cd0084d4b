package database

import (
	"errors"
	"os"
	"testing"

	"lcb/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run the server extractors against a live database named by
// LCB_TEST_POSTGRES_URL or LCB_TEST_MYSQL_URL and are skipped otherwise.
// They create and drop the lcb_categories and lcb_products tables.

var liveFixtures = map[string]struct {
	env    string
	create []string
}{
	"postgres": {
		env: "LCB_TEST_POSTGRES_URL",
		create: []string{
			`CREATE TABLE lcb_categories (
				id BIGSERIAL PRIMARY KEY,
				name VARCHAR(255) NOT NULL
			)`,
			`CREATE TABLE lcb_products (
				id BIGSERIAL PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				price NUMERIC(8,2),
				category_id BIGINT REFERENCES lcb_categories(id),
				created_at TIMESTAMP,
				updated_at TIMESTAMP
			)`,
		},
	},
	"mysql": {
		env: "LCB_TEST_MYSQL_URL",
		create: []string{
			`CREATE TABLE lcb_categories (
				id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL
			)`,
			`CREATE TABLE lcb_products (
				id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				price DECIMAL(8,2),
				category_id BIGINT UNSIGNED,
				created_at TIMESTAMP NULL,
				updated_at TIMESTAMP NULL,
				FOREIGN KEY (category_id) REFERENCES lcb_categories(id)
			)`,
		},
	},
}

func newLiveConnector(t *testing.T, name string) *Connector {
	t.Helper()

	fixture := liveFixtures[name]
	databaseURL := os.Getenv(fixture.env)
	if databaseURL == "" {
		t.Skipf("%s not set", fixture.env)
	}

	connector, err := NewConnector(databaseURL)
	require.NoError(t, err)

	drop := func() {
		connector.db.Exec("DROP TABLE IF EXISTS lcb_products")
		connector.db.Exec("DROP TABLE IF EXISTS lcb_categories")
	}
	drop()
	t.Cleanup(func() {
		drop()
		connector.Close()
	})

	for _, stmt := range fixture.create {
		_, err := connector.db.Exec(stmt)
		require.NoError(t, err)
	}

	return connector
}

func TestLiveExtractTable(t *testing.T) {
	for name := range liveFixtures {
		t.Run(name, func(t *testing.T) {
			connector := newLiveConnector(t, name)

			table, err := connector.ExtractTable("lcb_products")
			require.NoError(t, err)

			assert.Equal(t, "lcb_products", table.Name)
			require.Len(t, table.Columns, 6)
			assert.Equal(t, []string{"id"}, table.PrimaryKeys)

			id := table.Column("id")
			require.NotNil(t, id)
			assert.True(t, id.IsPrimaryKey)
			assert.False(t, id.IsNullable)

			title := table.Column("title")
			require.NotNil(t, title)
			assert.False(t, title.IsNullable)

			price := table.Column("price")
			require.NotNil(t, price)
			assert.True(t, price.IsNullable)

			require.Len(t, table.ForeignKeys, 1)
			assert.Equal(t, "lcb_categories", table.ForeignKeys[0].ReferencedTable)
			assert.Equal(t, "lcb_categories", table.Column("category_id").References)

			_, err = connector.ExtractTable("lcb_orders")
			assert.True(t, errors.Is(err, ErrTableNotFound))
		})
	}
}

func TestLiveExtractSchema(t *testing.T) {
	for name := range liveFixtures {
		t.Run(name, func(t *testing.T) {
			connector := newLiveConnector(t, name)

			s, err := connector.ExtractSchema(config.SchemaConfig{IncludeTables: []string{"lcb_categories", "lcb_products"}})
			require.NoError(t, err)
			require.Len(t, s.Tables, 2)

			products := s.Tables[0]
			if products.Name != "lcb_products" {
				products = s.Tables[1]
			}
			assert.Equal(t, "lcb_products", products.Name)
			assert.Equal(t, "lcb_categories", products.Column("category_id").References)
		})
	}
}
