package eventlog

import (
	"strconv"

	"github.com/sagernet/sing-powerevent/common/log"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/sirupsen/logrus"
)

// Event id bases, one per notification kind. The decoded value is added.
const (
	PowerSchemePersonalityID uint32 = 1000
	PowerSourceID            uint32 = 2000
	LidswitchStateID         uint32 = 3000
	BatteryPercentageID      uint32 = 4000
	DisplayStateID           uint32 = 5000
)

type Entry struct {
	ID      uint32
	Message string
}

func Translate(notification powersetting.Notification) Entry {
	switch event := notification.(type) {
	case powersetting.PowerSchemePersonalityChanged:
		return Entry{
			PowerSchemePersonalityID + uint32(event.Personality),
			"The active power scheme personality has changed: " + event.Personality.String(),
		}
	case powersetting.PowerSourceChanged:
		return Entry{
			PowerSourceID + uint32(event.Condition),
			"The system power source has changed: " + event.Condition.String(),
		}
	case powersetting.LidswitchStateChanged:
		if event.Open {
			return Entry{LidswitchStateID + 1, "The lid switch state has changed: Open"}
		}
		return Entry{LidswitchStateID, "The lid switch state has changed: Closed"}
	case powersetting.BatteryPercentageChanged:
		return Entry{
			BatteryPercentageID + uint32(event.Percentage),
			"The remaining battery capacity has changed: " + strconv.Itoa(event.Percentage) + "%",
		}
	case powersetting.DisplayStateChanged:
		return Entry{
			DisplayStateID + uint32(event.State),
			"The current monitor's display state has changed: " + event.State.String(),
		}
	default:
		return Entry{}
	}
}

// Writer is an informational event sink. *eventlog.Log from
// golang.org/x/sys/windows/svc/eventlog satisfies it.
type Writer interface {
	Info(eid uint32, msg string) error
}

type Source interface {
	OnNotification(handler func(powersetting.Notification)) (unsubscribe func())
}

// Attach writes the entry of every notification from source to each writer.
// Write failures are logged at debug level and otherwise ignored.
func Attach(source Source, writers ...Writer) (unsubscribe func()) {
	logger := log.NewLogger("eventlog")
	return source.OnNotification(func(notification powersetting.Notification) {
		entry := Translate(notification)
		for _, writer := range writers {
			err := writer.Info(entry.ID, entry.Message)
			if err != nil {
				logger.Debug("write entry ", entry.ID, ": ", err)
			}
		}
	})
}

type logWriter struct {
	logger logrus.FieldLogger
}

func NewLogWriter(logger logrus.FieldLogger) Writer {
	return &logWriter{log.OrNew(logger, "power")}
}

func (w *logWriter) Info(eid uint32, msg string) error {
	w.logger.WithField("id", eid).Info(msg)
	return nil
}
