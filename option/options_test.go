package option

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	options := Default()
	require.NoError(t, options.Validate())
	require.Equal(t, powersetting.All, options.Notifications())
	require.Equal(t, "PowerEventProvider", options.ServiceName)
	require.Equal(t, "PowerBroadcastProvider", options.EventSource)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
log_level = "debug"

[monitor]
battery_percentage = false
display_state = false
`)
	options, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", options.LogLevel)
	require.Equal(t, DefaultServiceName, options.ServiceName)
	require.Equal(t, powersetting.PowerSource|powersetting.LidswitchState|powersetting.PowerSchemePersonality, options.Notifications())
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()
	_, err := Load(writeConfig(t, `log_level = "verbose"`))
	require.ErrorContains(t, err, "log_level must be one of: trace debug info warn error")

	_, err = Load(writeConfig(t, `service_name = ""`))
	require.ErrorContains(t, err, "service_name is required")

	_, err = Load(writeConfig(t, `log_level = `))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadFilesOrder(t *testing.T) {
	t.Parallel()
	first := writeConfig(t, "log_level = \"warn\"\nevent_source = \"First\"\n")
	second := writeConfig(t, "log_level = \"error\"\n")
	options, err := loadFiles(first, second)
	require.NoError(t, err)
	require.Equal(t, "error", options.LogLevel)
	require.Equal(t, "First", options.EventSource)
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()
	paths := SearchPaths()
	require.NotEmpty(t, paths)
	require.Equal(t, "config.toml", paths[len(paths)-1])
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sing-powerevent", "config.toml")
	written, err := WriteDefault(path)
	require.NoError(t, err)
	require.True(t, written)
	written, err = WriteDefault(path)
	require.NoError(t, err)
	require.False(t, written)

	options, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), options)
}

func TestWatch(t *testing.T) {
	path := writeConfig(t, "log_level = \"info\"\n")
	reloaded := make(chan *Options, 16)
	stop, err := Watch(path, func(options *Options) {
		select {
		case reloaded <- options:
		default:
		}
	})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("log_level = \"info\"\n[monitor]\nlidswitch_state = false\n"), 0o644))
	timeout := time.After(10 * time.Second)
	for {
		select {
		case options := <-reloaded:
			if !options.Notifications().Has(powersetting.LidswitchState) {
				return
			}
		case <-timeout:
			t.Fatal("config not reloaded")
		}
	}
}
