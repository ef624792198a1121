package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labsched.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Len(t, cfg.Resources(), 20)
	assert.Len(t, cfg.Windows(), 13)
}

func TestLoad_OverridesKeyByKey(t *testing.T) {
	path := writeConfig(t, "resource_count: 3\nclose_hour: 12\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.ResourceCount)
	assert.Equal(t, 12, cfg.CloseHour)
	assert.Equal(t, "PC", cfg.ResourcePrefix, "unset keys keep defaults")
	assert.Len(t, cfg.Windows(), 4)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero resources":    "resource_count: 0\n",
		"close before open": "open_hour: 10\nclose_hour: 9\n",
		"close equals open": "open_hour: 10\nclose_hour: 10\n",
		"hour out of range": "open_hour: 26\n",
		"empty data path":   "data_path: \"\"\n",
		"bad prefix":        "resource_prefix: \"2PC\"\n",
		"not yaml":          "{{{\n",
	}
	for name, contents := range cases {
		path := writeConfig(t, contents)
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestValidate_DefaultsPassSchema(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
