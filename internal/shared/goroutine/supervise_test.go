package goroutine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrsproject/lrs/internal/shared/logger"
)

func waitFault(t *testing.T, faults <-chan error) error {
	t.Helper()
	select {
	case err := <-faults:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("onFault was not called")
		return nil
	}
}

func TestSupervisePanicIsFault(t *testing.T) {
	faults := make(chan error, 1)

	Supervise(logger.NewLogger(), "http-listener", func() error {
		panic("listener exploded")
	}, func(err error) { faults <- err })

	err := waitFault(t, faults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http-listener panicked: listener exploded")
}

func TestSuperviseErrorIsFault(t *testing.T) {
	faults := make(chan error, 1)
	cause := errors.New("address already in use")

	Supervise(logger.NewLogger(), "http-listener", func() error {
		return cause
	}, func(err error) { faults <- err })

	assert.ErrorIs(t, waitFault(t, faults), cause)
}

func TestSuperviseCleanExit(t *testing.T) {
	faults := make(chan error, 1)
	done := make(chan struct{})

	Supervise(logger.NewLogger(), "worker", func() error {
		close(done)
		return nil
	}, func(err error) { faults <- err })

	<-done
	select {
	case err := <-faults:
		t.Fatalf("unexpected fault: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
}
