package timer

// task is a pending delayed action
type task struct {
	due int
	fn  func()
}

// Scheduler runs delayed actions a whole number of ticks in the future.
// Callbacks run synchronously inside Tick in the order they were scheduled;
// it is the caller's job to guard callbacks against state that moved on
// (the engine wraps every callback in an epoch check).
type Scheduler struct {
	pending []*task
}

// NewScheduler returns an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues fn to run after delay ticks. A delay of zero or less runs
// fn immediately.
func (s *Scheduler) Schedule(delay int, fn func()) {
	if delay <= 0 {
		fn()
		return
	}
	s.pending = append(s.pending, &task{due: delay, fn: fn})
}

// Tick advances one time unit and runs every task that came due. Tasks
// scheduled by a running callback start counting from the next tick.
func (s *Scheduler) Tick() {
	var due []*task
	var rest []*task

	for _, t := range s.pending {
		t.due--
		if t.due <= 0 {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.pending = rest

	for _, t := range due {
		t.fn()
	}
}

// Clear drops every pending task
func (s *Scheduler) Clear() {
	s.pending = nil
}

// Len returns the number of pending tasks
func (s *Scheduler) Len() int {
	return len(s.pending)
}
