package option

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/sagernet/sing-powerevent/common"
	E "github.com/sagernet/sing-powerevent/common/exceptions"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const configName = "config.toml"

// SearchPaths lists the default configuration files in load order. Later
// files override earlier ones.
func SearchPaths() []string {
	var paths []string
	if runtime.GOOS == "windows" {
		if programData := os.Getenv("ProgramData"); programData != "" {
			paths = append(paths, filepath.Join(programData, "sing-powerevent", configName))
		}
	} else if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "sing-powerevent", configName))
	}
	return append(paths, configName)
}

// Load reads path, or every existing file of SearchPaths when path is empty,
// over the defaults and validates the result.
func Load(path string) (*Options, error) {
	var paths []string
	if path != "" {
		if !common.FileExists(path) {
			return nil, E.New("config file not found: ", path)
		}
		paths = []string{path}
	} else {
		paths = common.Filter(SearchPaths(), common.FileExists)
	}
	return loadFiles(paths...)
}

func loadFiles(paths ...string) (*Options, error) {
	k := koanf.New(".")
	for _, path := range paths {
		err := k.Load(file.Provider(path), toml.Parser())
		if err != nil {
			return nil, E.Cause(err, "load ", path)
		}
	}
	options := Default()
	err := k.Unmarshal("", options)
	if err != nil {
		return nil, E.Cause(err, "decode options")
	}
	err = options.Validate()
	if err != nil {
		return nil, err
	}
	return options, nil
}

const defaultConfig = `log_level = "info"
service_name = "` + DefaultServiceName + `"
event_source = "` + DefaultEventSource + `"

[monitor]
power_source = true
battery_percentage = true
lidswitch_state = true
power_scheme_personality = true
display_state = true
`

// WriteDefault writes the default configuration to path unless a file is
// already there. It reports whether it wrote.
func WriteDefault(path string) (bool, error) {
	if common.FileExists(path) {
		return false, nil
	}
	err := common.WriteFile(path, []byte(defaultConfig))
	if err != nil {
		return false, E.Cause(err, "write default config")
	}
	return true, nil
}
