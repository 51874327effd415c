package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"010_add_index.sql": {Data: []byte("SELECT 1;")},
		"001_init.sql":      {Data: []byte("SELECT 1;")},
		"002_skills.sql":    {Data: []byte("SELECT 1;")},
		"embed.go":          {Data: []byte("package migrations")},
		"old/003_skip.sql":  {Data: []byte("SELECT 1;")},
	}

	names, err := migrationFiles(fsys)

	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_skills.sql", "010_add_index.sql"}, names)
}
