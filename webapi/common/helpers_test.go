package common

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r io.ReadCloser) string {
	t.Helper()
	defer r.Close() //nolint: errcheck
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}
