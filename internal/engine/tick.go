// Package engine provides the day-tick loop that drives the simulation.
// The core itself does no scheduling; the engine calls its daily entry
// point once per simulated day.
package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DaysPerYear is the number of simulated days in one simulated year.
const DaysPerYear = 365

// Engine advances the simulation one day at a time.
type Engine struct {
	Day      int           // Current day counter (monotonic, never resets)
	Interval time.Duration // Base day interval

	// OnDay runs once per simulated day.
	OnDay func(day int)

	// Speed and running are adjusted from HTTP and signal goroutines
	// while the loop reads them, so they stay behind the mutex.
	mu      sync.Mutex
	speed   float64
	running bool
}

// NewEngine creates an engine with default settings.
func NewEngine() *Engine {
	return &Engine{
		speed:    1.0,
		Interval: time.Second,
	}
}

// Speed returns the current speed multiplier.
func (e *Engine) Speed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// SetSpeed changes the speed multiplier: 1.0 = one day per interval,
// 0 = paused.
func (e *Engine) SetSpeed(speed float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.speed = speed
}

// Running reports whether the loop is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *Engine) setRunning(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = v
}

// Run starts the loop. Blocks until Stop() is called.
func (e *Engine) Run() {
	e.setRunning(true)
	slog.Info("simulation engine started", "day", e.Day, "speed", e.Speed())

	for e.Running() {
		speed := e.Speed()
		if speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		e.Day++
		if e.OnDay != nil {
			e.OnDay(e.Day)
		}

		// Sleep for the remainder of the interval, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("simulation engine stopped", "day", e.Day)
}

// Stop halts the loop after the in-flight day completes.
func (e *Engine) Stop() {
	e.setRunning(false)
}

// SimDate returns a human-readable date string for a day counter.
func SimDate(day int) string {
	year := day/DaysPerYear + 1
	dayOfYear := day%DaysPerYear + 1
	return fmt.Sprintf("Year %d, Day %d", year, dayOfYear)
}
