package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"datascout/internal/config"
	"datascout/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileDefaults(t *testing.T) {
	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Sources)
	assert.False(t, cfg.Search.Trace)
	assert.Equal(t, []string{"*"}, cfg.WatchMode.IncludePatterns)
	assert.Equal(t, 10, cfg.WatchMode.EventBuffer)
}

func TestLoadConfigFile(t *testing.T) {
	content := `
sources:
  - name: ims04
    path: /instruments/ims04
    instrument_class: IMS_Agilent_TOF_DotD
search:
  trace: true
watch_mode:
  include_patterns:
    - "*.raw"
    - "*.d"
  event_buffer: 25
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "/instruments/ims04", cfg.Sources[0].Path)
	assert.Equal(t, types.IMSAgilentTOFDotD, cfg.Sources[0].Class())
	assert.True(t, cfg.Search.Trace)
	assert.Equal(t, []string{"*.raw", "*.d"}, cfg.WatchMode.IncludePatterns)
	assert.Equal(t, 25, cfg.WatchMode.EventBuffer)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	t.Run("bad auto fix", func(t *testing.T) {
		content := `
search:
  auto_fixes:
    - find: "ab"
      replace: "_"
`
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := config.LoadConfigFile(path)
		assert.Error(t, err)
	})

	t.Run("source without path", func(t *testing.T) {
		content := `
sources:
  - name: broken
`
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := config.LoadConfigFile(path)
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sources: ["), 0644))

		_, err := config.LoadConfigFile(path)
		assert.Error(t, err)
	})
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.NewTestConfig()
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Sources, 2)
	assert.Equal(t, "vorbi", loaded.Sources[0].Name)
	assert.Equal(t, types.FinniganIonTrap, loaded.Sources[0].Class())
}

func TestSourceByName(t *testing.T) {
	cfg := config.NewTestConfig()

	src, ok := cfg.SourceByName("ims04")
	require.True(t, ok)
	assert.Equal(t, types.IMSAgilentTOFDotD, src.Class())

	_, ok = cfg.SourceByName("nope")
	assert.False(t, ok)
}

func TestUnknownInstrumentClassDefaultsToFilePreference(t *testing.T) {
	src := config.Source{Name: "x", Path: ".", InstrumentClass: "Shiny_New_Instrument"}
	assert.Equal(t, types.InstrumentUnknown, src.Class())
	assert.False(t, src.Class().DirectoryPreferred())
}
