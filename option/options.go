package option

import (
	"errors"
	"reflect"
	"strings"

	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultServiceName = "PowerEventProvider"
	DefaultEventSource = "PowerBroadcastProvider"
)

type Options struct {
	LogLevel    string         `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	ServiceName string         `koanf:"service_name" validate:"required"`
	EventSource string         `koanf:"event_source" validate:"required"`
	Monitor     MonitorOptions `koanf:"monitor"`
}

// MonitorOptions selects the notifications to register, one switch per kind.
type MonitorOptions struct {
	PowerSource            bool `koanf:"power_source"`
	BatteryPercentage      bool `koanf:"battery_percentage"`
	LidswitchState         bool `koanf:"lidswitch_state"`
	PowerSchemePersonality bool `koanf:"power_scheme_personality"`
	DisplayState           bool `koanf:"display_state"`
}

func Default() *Options {
	return &Options{
		LogLevel:    "info",
		ServiceName: DefaultServiceName,
		EventSource: DefaultEventSource,
		Monitor: MonitorOptions{
			PowerSource:            true,
			BatteryPercentage:      true,
			LidswitchState:         true,
			PowerSchemePersonality: true,
			DisplayState:           true,
		},
	}
}

func (o *Options) Notifications() powersetting.Kind {
	var kinds powersetting.Kind
	for _, it := range []struct {
		enabled bool
		kind    powersetting.Kind
	}{
		{o.Monitor.PowerSource, powersetting.PowerSource},
		{o.Monitor.BatteryPercentage, powersetting.BatteryPercentage},
		{o.Monitor.LidswitchState, powersetting.LidswitchState},
		{o.Monitor.PowerSchemePersonality, powersetting.PowerSchemePersonality},
		{o.Monitor.DisplayState, powersetting.DisplayState},
	} {
		if it.enabled {
			kinds |= it.kind
		}
	}
	return kinds
}

var validate = newValidator()

func newValidator() *validator.Validate {
	instance := validator.New()
	instance.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("koanf"), ",")
		if name == "" {
			return field.Name
		}
		return name
	})
	return instance
}

func (o *Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	var errs []error
	for _, fieldError := range fieldErrors {
		errs = append(errs, E.New(formatFieldError(fieldError)))
	}
	return E.Cause(E.Errors(errs...), "invalid options")
}

func formatFieldError(fieldError validator.FieldError) string {
	field := fieldError.Namespace()
	if _, name, found := strings.Cut(field, "."); found {
		field = name
	}
	switch fieldError.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fieldError.Param()
	default:
		return field + " failed " + fieldError.Tag() + " validation"
	}
}
