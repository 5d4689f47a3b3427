package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	for name, level := range map[string]logrus.Level{
		"":        logrus.InfoLevel,
		"TRACE":   logrus.TraceLevel,
		"debug":   logrus.DebugLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"Info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
	} {
		require.NoError(t, SetLevel(name))
		require.Equal(t, level, logrus.GetLevel())
	}
	logrus.SetLevel(logrus.DebugLevel)
	for _, name := range []string{"verbose", "fatal", "panic"} {
		require.Error(t, SetLevel(name))
		require.Equal(t, logrus.DebugLevel, logrus.GetLevel(), name)
	}
}

func TestTaggedHook(t *testing.T) {
	var buffer bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buffer)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logger.AddHook(new(TaggedHook))
	logger.WithField("tag", "channel").Info("channel: opened")
	require.Contains(t, buffer.String(), `msg="[channel]: opened"`)
	require.NotContains(t, buffer.String(), "tag=")
}

func TestOrNew(t *testing.T) {
	entry := NewLogger("test")
	require.Same(t, entry, OrNew(entry, "other"))
	require.NotNil(t, OrNew(nil, "other"))
}
