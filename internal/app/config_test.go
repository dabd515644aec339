package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/registrar/internal/store/flatfile"
	"github.com/shrimpsizemoose/registrar/internal/store/memory"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "flatfile", config.Store.Driver)
	assert.Equal(t, "students.txt", config.Store.StudentsFile)
	assert.Equal(t, "lut.fi", config.Students.EmailDomain)
	assert.Equal(t, 30, config.Grading.RecencyWindowDays)
	assert.Equal(t, 3, config.Search.MinQueryLength)
	assert.True(t, config.Display.Color)
}

func TestLoadConfigOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
[store]
data_dir = "/var/lib/registrar"
passed_file = "completions.txt"

[students]
email_domain = "student.lut.fi"

[grading]
recency_window_days = 14

[display]
color = false
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/registrar", config.Store.DataDir)
	assert.Equal(t, "completions.txt", config.Store.PassedFile)
	assert.Equal(t, "courses.txt", config.Store.CoursesFile, "unset keys keep defaults")
	assert.Equal(t, "student.lut.fi", config.Students.EmailDomain)
	assert.Equal(t, 14, config.Grading.RecencyWindowDays)
	assert.False(t, config.Display.Color)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("REGISTRAR_DATA_DIR", "/tmp/elsewhere")
	t.Setenv("REGISTRAR_STORE_DRIVER", "memory")
	t.Setenv("REGISTRAR_RECENCY_WINDOW_DAYS", "7")

	config, err := LoadConfig(writeConfig(t, "[store]\ndata_dir = \"ignored\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", config.Store.DataDir)
	assert.Equal(t, "memory", config.Store.Driver)
	assert.Equal(t, 7, config.Grading.RecencyWindowDays)
}

func TestZeroRecencyWindowIsKept(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "[grading]\nrecency_window_days = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, config.Grading.RecencyWindowDays)

	service, err := NewServiceWithStore(config, memory.NewMemoryStore(nil, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, service.Grader.RecencyWindowDays)

	t.Setenv("REGISTRAR_RECENCY_WINDOW_DAYS", "0")
	config, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, 0, config.Grading.RecencyWindowDays)

	t.Setenv("REGISTRAR_RECENCY_WINDOW_DAYS", "-1")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[store\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[store]\ndriver = \"postgres\"\n"))
	assert.ErrorContains(t, err, "unknown store driver")

	_, err = LoadConfig(writeConfig(t, "[students]\nemail_domain = \"\"\n"))
	assert.Error(t, err)

	t.Setenv("REGISTRAR_RECENCY_WINDOW_DAYS", "soon")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	config := DefaultConfig()
	config.Store.DataDir = t.TempDir()

	st, err := NewStore(config)
	require.NoError(t, err)
	assert.IsType(t, &flatfile.FlatFileStore{}, st)

	config.Store.Driver = "memory"
	st, err = NewStore(config)
	require.NoError(t, err)
	assert.IsType(t, &memory.MemoryStore{}, st)

	config.Store.Driver = "mongo"
	_, err = NewStore(config)
	assert.Error(t, err)
}

func TestNewServiceLoadsFlatFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "students.txt"), []byte("1,Smith,Anna,,anna.smith@lut.fi,2023,SE\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.txt"), []byte("A,Algorithms,5\n"), 0o644))

	config := DefaultConfig()
	config.Store.DataDir = dir

	service, err := NewService(config)
	require.NoError(t, err)
	defer service.Close()

	assert.Len(t, service.Records.Students, 1)
	assert.Len(t, service.Records.Courses, 1)
	assert.Empty(t, service.Records.Passed)
	assert.Equal(t, 30, service.Grader.RecencyWindowDays)
}
