package oracle

import (
	"errors"
	"sync"
	"time"

	"github.com/ratreya/indic-ephemeris/model"
)

// circuitState mirrors the three-state circuit breaker pattern: closed
// (normal), open (failing fast), half-open (probing for recovery).
type circuitState int

const (
	circuitClosed circuitState = iota
	circuitOpen
	circuitHalfOpen
)

// ErrCircuitOpen is returned when a degraded oracle has tripped the
// breaker and is being given time to recover before further calls reach
// it.
var ErrCircuitOpen = errors.New("oracle: circuit open, oracle is degraded")

// CircuitBreakerConfig tunes when the breaker trips and how long it waits
// before probing again.
type CircuitBreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
}

// DefaultCircuitBreakerConfig trips after 5 consecutive failures, closes
// again after 2 consecutive successes in the half-open probe state, and
// waits 30 seconds before probing.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{FailureThreshold: 5, SuccessThreshold: 2, Timeout: 30 * time.Second}
}

// CircuitBreakerOracle wraps an Oracle whose backing data files or
// process might degrade mid-run (a crashed worker, a corrupted mmap
// region) and fails fast once it has seen enough consecutive errors,
// instead of hammering a dead oracle on every sample.
type CircuitBreakerOracle struct {
	inner  Oracle
	cfg    CircuitBreakerConfig
	mu     sync.Mutex
	state  circuitState
	fails  int
	oks    int
	lastAt time.Time
}

// NewCircuitBreakerOracle wraps inner with a circuit breaker using cfg.
func NewCircuitBreakerOracle(inner Oracle, cfg CircuitBreakerConfig) *CircuitBreakerOracle {
	return &CircuitBreakerOracle{inner: inner, cfg: cfg, state: circuitClosed}
}

func (c *CircuitBreakerOracle) allow() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case circuitOpen:
		if time.Since(c.lastAt) > c.cfg.Timeout {
			c.state = circuitHalfOpen
			return nil
		}
		return ErrCircuitOpen
	default:
		return nil
	}
}

func (c *CircuitBreakerOracle) recordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case circuitHalfOpen:
		c.oks++
		if c.oks >= c.cfg.SuccessThreshold {
			c.state = circuitClosed
			c.fails = 0
			c.oks = 0
		}
	case circuitClosed:
		c.fails = 0
	}
}

func (c *CircuitBreakerOracle) recordFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastAt = time.Now()
	switch c.state {
	case circuitClosed:
		c.fails++
		if c.fails >= c.cfg.FailureThreshold {
			c.state = circuitOpen
		}
	case circuitHalfOpen:
		c.state = circuitOpen
		c.oks = 0
	}
}

// Compute implements Oracle, tripping the breaker after repeated failures
// from the wrapped oracle.
func (c *CircuitBreakerOracle) Compute(julianDay float64, body model.Body, place model.Place) (Sample, error) {
	if err := c.allow(); err != nil {
		return Sample{}, err
	}
	sample, err := c.inner.Compute(julianDay, body, place)
	if err != nil {
		c.recordFailure()
		return Sample{}, err
	}
	c.recordSuccess()
	return sample, nil
}

// Ascendant implements Oracle, under the same breaker as Compute.
func (c *CircuitBreakerOracle) Ascendant(julianDay float64, place model.Place) (Sample, error) {
	if err := c.allow(); err != nil {
		return Sample{}, err
	}
	sample, err := c.inner.Ascendant(julianDay, place)
	if err != nil {
		c.recordFailure()
		return Sample{}, err
	}
	c.recordSuccess()
	return sample, nil
}
