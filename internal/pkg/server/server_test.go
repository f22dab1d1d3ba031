package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink/portal/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.NewZapLogger(logger.Config{Level: "error"})
	require.NoError(t, err)
	return zl
}

func TestShutdownManager_RunsClosersInOrder(t *testing.T) {
	// Arrange
	sm := NewShutdownManager(testLogger(t))

	var order []string
	sm.Register(func(ctx context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, "redis")
		return nil
	})

	// Act
	err := sm.Shutdown(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"postgres", "redis"}, order)
}

func TestShutdownManager_ContinuesPastFailure(t *testing.T) {
	// Arrange
	sm := NewShutdownManager(testLogger(t))

	var ran []string
	sm.Register(func(ctx context.Context) error {
		ran = append(ran, "first")
		return errors.New("close failed")
	})
	sm.Register(func(ctx context.Context) error {
		ran = append(ran, "second")
		return nil
	})

	// Act: one failing component must not block the rest
	err := sm.Shutdown(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestShutdownManager_Empty(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	assert.NoError(t, sm.Shutdown(context.Background()))
}
