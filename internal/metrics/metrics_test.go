package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	require.NoError(t, WriteTextfile(""))

	before := testutil.ToFloat64(CompletionsTotal.WithLabelValues("added"))
	CompletionsTotal.WithLabelValues("added").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(CompletionsTotal.WithLabelValues("added")))

	path := filepath.Join(t.TempDir(), "registrar.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "registrar_completions_total")
}
