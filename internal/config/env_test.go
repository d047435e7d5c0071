package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvName(t *testing.T) {
	assert.Equal(t, "HISAB_LATITUDE", EnvName("latitude"))
	assert.Equal(t, "HISAB_VISIBILITY_TIER", EnvName("visibility_tier"))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HISAB_LATITUDE", "-7.25")
	t.Setenv("HISAB_LONGITUDE", "112.75")
	t.Setenv("HISAB_USE_ELEVATION", "false")
	t.Setenv("HISAB_TIME_FORMAT", "")

	c, err := FromEnv()
	require.NoError(t, err)

	require.NotNil(t, c.Latitude)
	assert.Equal(t, -7.25, *c.Latitude)
	assert.Equal(t, 112.75, *c.Longitude)
	require.NotNil(t, c.UseElevation)
	assert.False(t, *c.UseElevation)
	assert.Empty(t, c.TimeFormat)
}

func TestFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("HISAB_HORIZON", "flat")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HISAB_HORIZON")
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HISAB_TIMEZONE=8\nHISAB_IHTIYAT=2\n"), 0o644))

	// Variables already in the environment win over the file.
	t.Setenv("HISAB_IHTIYAT", "1")
	t.Setenv("HISAB_TIMEZONE", "")
	os.Unsetenv("HISAB_TIMEZONE")

	require.NoError(t, LoadDotEnv(path))

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8.0, *c.Timezone)
	assert.Equal(t, 1.0, c.Ihtiyat)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
