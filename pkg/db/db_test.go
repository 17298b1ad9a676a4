package db

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestAcquire_DialsOnceAndCaches(t *testing.T) {
	var dials int
	h := NewHandleWithDialer(func(context.Context) (*gorm.DB, error) {
		dials++
		return gorm.Open(sqlite.Open("file:acquire_once?mode=memory&cache=shared"), &gorm.Config{})
	}, zap.NewNop())

	first, err := h.Acquire(context.Background())
	require.NoError(t, err)
	second, err := h.Acquire(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, dials)
}

func TestAcquire_FailureIsNotCached(t *testing.T) {
	dialErr := errors.New("store unreachable")
	var dials int
	h := NewHandleWithDialer(func(context.Context) (*gorm.DB, error) {
		dials++
		if dials == 1 {
			return nil, dialErr
		}
		return gorm.Open(sqlite.Open("file:acquire_retry?mode=memory&cache=shared"), &gorm.Config{})
	}, zap.NewNop())

	_, err := h.Acquire(context.Background())
	assert.ErrorIs(t, err, dialErr)

	conn, err := h.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, conn)
	assert.Equal(t, 2, dials)
}

func TestAcquire_ConcurrentFirstCallsShareOneDial(t *testing.T) {
	var dials int
	h := NewHandleWithDialer(func(context.Context) (*gorm.DB, error) {
		dials++
		return gorm.Open(sqlite.Open("file:acquire_concurrent?mode=memory&cache=shared"), &gorm.Config{})
	}, zap.NewNop())

	var wg sync.WaitGroup
	conns := make([]*gorm.DB, 8)
	errs := make([]error, 8)
	for i := range conns {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conns[i], errs[i] = h.Acquire(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, dials)
	for i, conn := range conns {
		require.NoError(t, errs[i])
		assert.Same(t, conns[0], conn)
	}
}
