package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURLFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    string
		wantErr bool
	}{
		{
			name: "explicit url",
			env:  map[string]string{"DATABASE_URL": "postgres://u@h/db", "DB_CONNECTION": "mysql"},
			want: "postgres://u@h/db",
		},
		{
			name: "sqlite",
			env:  map[string]string{"DB_CONNECTION": "sqlite", "DB_DATABASE": "/tmp/app.sqlite"},
			want: "sqlite:///tmp/app.sqlite",
		},
		{
			name: "sqlite default path",
			env:  map[string]string{"DB_CONNECTION": "sqlite"},
			want: "sqlite://database/database.sqlite",
		},
		{
			name: "pgsql",
			env: map[string]string{
				"DB_CONNECTION": "pgsql",
				"DB_HOST":       "db",
				"DB_PORT":       "5433",
				"DB_DATABASE":   "shop",
				"DB_USERNAME":   "laravel",
				"DB_PASSWORD":   "secret",
			},
			want: "postgres://laravel:secret@db:5433/shop?sslmode=disable",
		},
		{
			name: "mysql defaults",
			env:  map[string]string{"DB_CONNECTION": "mysql", "DB_DATABASE": "shop", "DB_USERNAME": "root"},
			want: "mysql://root@127.0.0.1:3306/shop",
		},
		{name: "missing connection", env: map[string]string{}, wantErr: true},
		{name: "unsupported", env: map[string]string{"DB_CONNECTION": "sqlsrv"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DatabaseURLFromEnv(tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatabaseURLFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_NAME=Shop\nDB_CONNECTION=pgsql\nDB_HOST=localhost\nDB_DATABASE=shop\nDB_USERNAME=app\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, err := DatabaseURLFromEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://app@localhost:5432/shop?sslmode=disable", got)

	_, err = DatabaseURLFromEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
