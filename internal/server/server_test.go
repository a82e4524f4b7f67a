package server

import (
	"testing"
	"time"
)

func TestStopIsIdempotent(t *testing.T) {
	s := &Server{done: make(chan struct{})}

	if err := s.Stop(); err != nil {
		t.Fatalf("first Stop: %v", err)
	}

	// A shutdown command and a signal handler may both call Stop. The
	// second call must be a no-op, not a double close.
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}

	select {
	case <-s.Done():
	default:
		t.Fatal("Done channel still open after Stop")
	}
}

func TestWaitReturnsAfterStop(t *testing.T) {
	s := &Server{done: make(chan struct{})}

	waited := make(chan struct{})
	go func() {
		s.Wait()
		close(waited)
	}()

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Stop")
	}
}
