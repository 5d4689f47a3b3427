package common

import (
	"io"

	E "github.com/sagernet/sing-powerevent/common/exceptions"
)

func Map[T any, N any](arr []T, block func(it T) N) []N {
	retArr := make([]N, 0, len(arr))
	for index := range arr {
		retArr = append(retArr, block(arr[index]))
	}
	return retArr
}

func Filter[T any](arr []T, block func(it T) bool) []T {
	var retArr []T
	for _, it := range arr {
		if block(it) {
			retArr = append(retArr, it)
		}
	}
	return retArr
}

func Error(_ any, err error) error {
	return err
}

// Close closes every non-nil closer and joins the errors.
func Close(closers ...io.Closer) error {
	var errs []error
	for _, closer := range closers {
		if closer == nil {
			continue
		}
		errs = append(errs, closer.Close())
	}
	return E.Errors(errs...)
}
