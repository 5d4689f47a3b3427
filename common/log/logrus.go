package log

import (
	"strings"

	E "github.com/sagernet/sing-powerevent/common/exceptions"

	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.AddHook(new(TaggedHook))
}

func NewLogger(tag string) *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger()).WithField("tag", tag)
}

// OrNew returns logger, or a tagged standard logger when it is nil.
func OrNew(logger logrus.FieldLogger, tag string) logrus.FieldLogger {
	if logger != nil {
		return logger
	}
	return NewLogger(tag)
}

// SetLevel sets the standard logger level. An empty level is info; fatal
// and panic are rejected since they would hide every warning.
func SetLevel(level string) error {
	if level == "" {
		level = "info"
	}
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return E.New("unknown log level: ", level)
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return E.Cause(err, "parse log level")
	}
	logrus.SetLevel(parsed)
	return nil
}

type TaggedHook struct{}

func (h *TaggedHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *TaggedHook) Fire(entry *logrus.Entry) error {
	if tagObj, loaded := entry.Data["tag"]; loaded {
		tag, isString := tagObj.(string)
		if !isString {
			return nil
		}
		delete(entry.Data, "tag")
		entry.Message = "[" + tag + "]: " + strings.TrimPrefix(entry.Message, tag+": ")
	}
	return nil
}
