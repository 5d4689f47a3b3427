//go:build !windows

package powerevent

import (
	"context"

	"github.com/sagernet/sing-powerevent/channel"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/sirupsen/logrus"
)

func SystemVersion() powersetting.OSVersion {
	return powersetting.OSVersion{}
}

func NewWindowDispatcher(ctx context.Context, notifications powersetting.Kind, logger logrus.FieldLogger) (*Dispatcher, error) {
	return nil, channel.ErrUnsupported
}

func NewCallbackDispatcher(ctx context.Context, notifications powersetting.Kind, logger logrus.FieldLogger) (*Dispatcher, error) {
	return nil, channel.ErrUnsupported
}

func NewServiceDispatcher(ctx context.Context, serviceName string, notifications powersetting.Kind, logger logrus.FieldLogger) (*Dispatcher, *channel.ServiceChannel, error) {
	return nil, nil, channel.ErrUnsupported
}
