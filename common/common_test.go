package common

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"testing"

	E "github.com/sagernet/sing-powerevent/common/exceptions"

	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func TestClose(t *testing.T) {
	t.Parallel()
	var closed int
	failed := E.New("failed")
	err := Close(
		closerFunc(func() error { closed++; return nil }),
		nil,
		closerFunc(func() error { closed++; return failed }),
	)
	require.ErrorIs(t, err, failed)
	require.Equal(t, 2, closed)
	require.NoError(t, Close(io.NopCloser(nil)))
}

func TestSlices(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	require.Equal(t, []int{2}, Filter([]int{1, 2, 3}, func(it int) bool { return it == 2 }))
}

func TestContextAfterFunc(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	called := make(chan struct{})
	ContextAfterFunc(ctx, func() { close(called) })
	select {
	case <-called:
		t.Fatal("called before cancel")
	default:
	}
	cancel()
	<-called
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "file.txt")
	require.False(t, FileExists(path))
	require.NoError(t, WriteFile(path, []byte("content")))
	require.True(t, FileExists(path))
}
