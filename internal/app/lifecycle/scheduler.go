package lifecycle

import "time"

// Scheduler owns the controller's delayed callbacks so a fresh intent can
// cancel a pending decay instead of leaking timers into a superseded record.
// Tests substitute a manually stepped fake.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}
