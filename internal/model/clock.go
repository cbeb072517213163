package model

import (
	"sync"
	"time"
)

// Clock is one side's chess clock. It only ticks between Start and
// Stop; the remaining time is computed lazily from the last start.
type Clock struct {
	mu          sync.Mutex
	timeLeft    time.Duration
	lastStarted time.Time
	isRunning   bool
}

func NewClock(initialTime time.Duration) *Clock {
	return &Clock{
		timeLeft:  initialTime,
		isRunning: false,
	}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = time.Now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.timeLeft -= time.Since(c.lastStarted)
		c.isRunning = false
	}
}

func (c *Clock) GetTimeLeft() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.timeLeft - time.Since(c.lastStarted)
	}
	return c.timeLeft
}
