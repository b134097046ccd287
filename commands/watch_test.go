package commands

import (
	"testing"
	"time"
)

func TestDebouncer(t *testing.T) {
	t.Run("burst collapses to one firing", func(t *testing.T) {
		d := newDebouncer(time.Millisecond)
		for i := 0; i < 10; i++ {
			d.Trigger()
		}

		<-d.C()

		select {
		case <-d.C():
			t.Fatal("burst produced a second firing")
		case <-time.After(20 * time.Millisecond):
		}
	})

	t.Run("does not fire without a trigger", func(t *testing.T) {
		d := newDebouncer(time.Millisecond)

		select {
		case <-d.C():
			t.Fatal("fired without a trigger")
		case <-time.After(20 * time.Millisecond):
		}
	})

	t.Run("re-arms after a firing", func(t *testing.T) {
		d := newDebouncer(time.Millisecond)

		d.Trigger()
		<-d.C()

		d.Trigger()
		select {
		case <-d.C():
		case <-time.After(time.Second):
			t.Fatal("debouncer did not re-arm after firing")
		}
	})
}
