package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "./downloaded", cfg.DownloadDir)
	assert.Equal(t, "css_properties.json", cfg.Output)
	assert.True(t, cfg.Compress)
	assert.Equal(t, 5*time.Second, cfg.RobotsTimeout)
	assert.Equal(t, 1.0, cfg.RequestsPerHost)
	assert.Equal(t, "normal", cfg.LogLevel)
	assert.Empty(t, cfg.MongoURI)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	file := filepath.Join(dir, "csscatalog.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output: out.json\nrobots_timeout: 2s\nmax_items: 10\n"), 0o644))

	t.Setenv("CSSCATALOG_MAX_ITEMS", "3")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)
	assert.Equal(t, "out.json", cfg.Output)
	assert.Equal(t, 2*time.Second, cfg.RobotsTimeout)
	assert.Equal(t, 3, cfg.MaxItems)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CSSCATALOG_DOWNLOAD_DIR=cache\n"), 0o644))
	// restored on cleanup; godotenv only fills unset variables
	t.Setenv("CSSCATALOG_DOWNLOAD_DIR", "")
	require.NoError(t, os.Unsetenv("CSSCATALOG_DOWNLOAD_DIR"))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "cache", cfg.DownloadDir)
}

func TestValidate(t *testing.T) {
	err := Config{LogLevel: "loud", MaxItems: -1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download_dir")
	assert.Contains(t, err.Error(), "max_items")
	assert.Contains(t, err.Error(), "loud")
}

type buffer struct{ data []byte }

func (b *buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *buffer) Sync() error { return nil }

func TestNewLogger(t *testing.T) {
	var out, errOut buffer
	log := newLogger("normal", &out, &errOut)
	log.Debug("hidden")
	log.Info("shown")
	log.Error("failed")

	assert.NotContains(t, string(out.data), "hidden")
	assert.Contains(t, string(out.data), "shown")
	assert.NotContains(t, string(out.data), "failed")
	assert.Contains(t, string(errOut.data), "failed")

	out = buffer{}
	newLogger("debug", &out, &errOut).Debug("visible")
	assert.Contains(t, string(out.data), "visible")

	assert.False(t, newLogger("none", &out, &errOut).Core().Enabled(zapcore.ErrorLevel))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
