package powerevent

import (
	"context"

	"github.com/sagernet/sing-powerevent/channel"
	"github.com/sagernet/sing-powerevent/powersetting"
	"github.com/sagernet/sing-powerevent/subscription"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// SystemVersion reads the running NT version. RtlGetVersion is not subject
// to manifest based version lies.
func SystemVersion() powersetting.OSVersion {
	info := windows.RtlGetVersion()
	return powersetting.OSVersion{Major: info.MajorVersion, Minor: info.MinorVersion}
}

func NewWindowDispatcher(ctx context.Context, notifications powersetting.Kind, logger logrus.FieldLogger) (*Dispatcher, error) {
	return newSystemDispatcher(ctx, channel.NewWindowChannel(), notifications, logger)
}

func NewCallbackDispatcher(ctx context.Context, notifications powersetting.Kind, logger logrus.FieldLogger) (*Dispatcher, error) {
	return newSystemDispatcher(ctx, channel.NewCallbackChannel(), notifications, logger)
}

// NewServiceDispatcher must be called from the service running as
// serviceName. It takes over the control handler of the service; stop, pause
// and continue requests are reported through the returned channel.
func NewServiceDispatcher(ctx context.Context, serviceName string, notifications powersetting.Kind, logger logrus.FieldLogger) (*Dispatcher, *channel.ServiceChannel, error) {
	serviceChannel, err := channel.NewSystemServiceChannel(serviceName)
	if err != nil {
		return nil, nil, err
	}
	dispatcher, err := newSystemDispatcher(ctx, serviceChannel, notifications, logger)
	return dispatcher, serviceChannel, err
}

func newSystemDispatcher(ctx context.Context, platformChannel channel.Channel, notifications powersetting.Kind, logger logrus.FieldLogger) (*Dispatcher, error) {
	dispatcher, err := New(ctx, Options{
		Channel:       platformChannel,
		Registrar:     subscription.NewSystemRegistrar(),
		Version:       SystemVersion(),
		Notifications: notifications,
		Logger:        logger,
	})
	if dispatcher == nil {
		platformChannel.Close()
	}
	return dispatcher, err
}
