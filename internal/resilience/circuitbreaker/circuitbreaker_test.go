package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      2,
		Interval:         10 * time.Second,
		Timeout:          100 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

var errBoom = errors.New("boom")

func TestNew(t *testing.T) {
	cb := New(testConfig())

	assert.Equal(t, "test-circuit", cb.Name())
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.False(t, cb.IsOpen())
}

func TestCircuitBreaker_Execute(t *testing.T) {
	cb := New(testConfig())

	got, err := cb.Execute(func() (interface{}, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	got, err = cb.Execute(func() (interface{}, error) { return nil, errBoom })
	assert.ErrorIs(t, err, errBoom)
	assert.Nil(t, got)
}

func TestCircuitBreaker_TripsOpen(t *testing.T) {
	cb := New(testConfig())

	// 4 failures + 1 success stays below MinRequests until the 6th call
	for range 4 {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errBoom })
	}
	_, _ = cb.Execute(func() (interface{}, error) { return "ok", nil })
	_, _ = cb.Execute(func() (interface{}, error) { return nil, errBoom })

	require.True(t, cb.IsOpen())

	called := false
	_, err := cb.Execute(func() (interface{}, error) {
		called = true
		return nil, nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.False(t, called, "function must not run while the circuit is open")
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb := New(testConfig())
	for range 6 {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errBoom })
	}
	require.True(t, cb.IsOpen())

	time.Sleep(150 * time.Millisecond)

	_, err := cb.Execute(func() (interface{}, error) { return "ok", nil })
	assert.NoError(t, err)
	assert.NotEqual(t, gobreaker.StateOpen, cb.State())
}

func TestCircuitBreaker_MinRequests(t *testing.T) {
	cb := New(testConfig())
	for range 4 {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errBoom })
	}
	assert.False(t, cb.IsOpen(), "circuit must stay closed below MinRequests")
}

func TestCircuitBreaker_IsSuccessful(t *testing.T) {
	benign := errors.New("duplicate key")
	cfg := testConfig()
	cfg.IsSuccessful = func(err error) bool { return err == nil || errors.Is(err, benign) }
	cb := New(cfg)

	for range 10 {
		_, err := cb.Execute(func() (interface{}, error) { return nil, benign })
		assert.ErrorIs(t, err, benign)
	}
	assert.False(t, cb.IsOpen())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("test")

	assert.Equal(t, "test", cfg.Name)
	assert.Equal(t, uint32(3), cfg.MaxRequests)
	assert.Equal(t, 0.6, cfg.FailureThreshold)
	assert.Nil(t, cfg.IsSuccessful)
}
