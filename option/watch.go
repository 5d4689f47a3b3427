package option

import (
	"github.com/sagernet/sing-powerevent/common/log"

	"github.com/knadh/koanf/providers/file"
)

// Watch calls onChange with the reloaded options every time path changes.
// Invalid files are logged and skipped. The returned function stops watching.
func Watch(path string, onChange func(*Options)) (stop func() error, err error) {
	logger := log.NewLogger("option")
	provider := file.Provider(path)
	err = provider.Watch(func(_ any, err error) {
		if err != nil {
			logger.Warn("watch ", path, ": ", err)
			return
		}
		options, err := loadFiles(path)
		if err != nil {
			logger.Error("reload ", path, ": ", err)
			return
		}
		logger.Info("reloaded ", path)
		onChange(options)
	})
	if err != nil {
		return nil, err
	}
	return provider.Unwatch, nil
}
