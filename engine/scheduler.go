package engine

import (
	"log/slog"
	"time"
)

// maxCatchUp bounds how many missed periods a task replays in one Advance
// Beyond that the task resyncs to now, like a frame clock dropping late ticks
const maxCatchUp = 8

// TaskFunc runs on the goroutine that calls Advance
type TaskFunc func(now time.Time)

type task struct {
	name     string
	interval time.Duration
	next     time.Time
	fn       TaskFunc
	once     bool
	done     bool
}

// Scheduler runs independent periodic and one-shot tasks cooperatively
// All tasks execute inside Advance on the caller's goroutine, so tasks never run in parallel
// Ordering: registration order across tasks, FIFO within a task
// A Scheduler belongs to one phase: register on mount, Stop on unmount
type Scheduler struct {
	clock   TimeProvider
	tasks   []*task
	stopped bool
	log     *slog.Logger
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		log:   slog.With("component", "scheduler"),
	}
}

// Every registers fn to run each interval, first run one interval from now
func (s *Scheduler) Every(name string, interval time.Duration, fn TaskFunc) {
	s.add(name, interval, fn, false)
}

// After registers fn to run once after delay
func (s *Scheduler) After(name string, delay time.Duration, fn TaskFunc) {
	s.add(name, delay, fn, true)
}

func (s *Scheduler) add(name string, interval time.Duration, fn TaskFunc, once bool) {
	if s.stopped || fn == nil {
		return
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	s.tasks = append(s.tasks, &task{
		name:     name,
		interval: interval,
		next:     s.clock.Now().Add(interval),
		fn:       fn,
		once:     once,
	})
}

// Cancel removes every task registered under name
func (s *Scheduler) Cancel(name string) {
	for _, t := range s.tasks {
		if t.name == name {
			t.done = true
		}
	}
}

// Advance runs every due task and returns the number of executions
// Stop called from inside a task takes effect immediately
func (s *Scheduler) Advance() int {
	if s.stopped {
		return 0
	}

	now := s.clock.Now()
	fired := 0

	// Index loop: tasks registered by a running task are appended and not yet due
	for i := 0; i < len(s.tasks); i++ {
		t := s.tasks[i]
		runs := 0
		for !t.done && !s.stopped && !now.Before(t.next) {
			if runs == maxCatchUp {
				s.log.Debug("task resynced", "task", t.name, "behind", now.Sub(t.next))
				t.next = now.Add(t.interval)
				break
			}
			t.fn(t.next)
			t.next = t.next.Add(t.interval)
			runs++
			fired++
			if t.once {
				t.done = true
			}
		}
		if s.stopped {
			return fired
		}
	}

	s.compact()
	return fired
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	// Clear the tail so finished closures can be collected
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Stop cancels all tasks unconditionally; the scheduler cannot be restarted
func (s *Scheduler) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	for _, t := range s.tasks {
		t.done = true
	}
	s.tasks = nil
}

// Stopped reports whether Stop has been called
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Len returns the number of live tasks
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}
