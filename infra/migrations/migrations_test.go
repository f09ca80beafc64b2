package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(files, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(files, down)
		assert.NoError(t, err, "missing down migration for %s", up)
	}
}

func TestEmbeddedSchemaCoversTables(t *testing.T) {
	body, err := fs.ReadFile(files, "000001_create_accounts_and_banks.up.sql")
	require.NoError(t, err)
	schema := string(body)
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS accounts")
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS banks")
	assert.Contains(t, schema, "balance     NUMERIC")
}
