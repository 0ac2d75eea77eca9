package speech

import (
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSpeakEmptyTextIsNoop(t *testing.T) {
	engine := NewEngine("sleep")
	if err := engine.Speak(""); err != nil {
		t.Fatalf("empty speak failed: %v", err)
	}
	if engine.Playing() {
		t.Error("expected no playback")
	}
}

func TestSpeakReportsStartFailure(t *testing.T) {
	engine := NewEngine("definitely-not-a-binary-xyz")
	if err := engine.Speak("hello"); err == nil {
		t.Error("expected a start failure")
	}
	if engine.Playing() {
		t.Error("expected no playback after failure")
	}
}

func TestStopEndsPlayback(t *testing.T) {
	engine := NewEngine("sleep")
	t.Cleanup(engine.Stop)

	if err := engine.Speak("10"); err != nil {
		t.Fatalf("speak failed: %v", err)
	}
	if !engine.Playing() {
		t.Fatal("expected playback in flight")
	}

	engine.Stop()
	if engine.Playing() {
		t.Error("expected playback stopped")
	}
}

func TestNewUtteranceCancelsInFlight(t *testing.T) {
	engine := NewEngine("sleep")
	t.Cleanup(engine.Stop)

	if err := engine.Speak("10"); err != nil {
		t.Fatalf("speak failed: %v", err)
	}
	// Second utterance takes over; the first's waiter must not flip state.
	if err := engine.Speak("0.05"); err != nil {
		t.Fatalf("speak failed: %v", err)
	}
	if !engine.Playing() {
		t.Fatal("expected playback in flight")
	}

	waitFor(t, func() bool { return !engine.Playing() }, "second utterance to finish")
}

func TestNotifySurfacesTransitions(t *testing.T) {
	engine := NewEngine("sleep")
	t.Cleanup(engine.Stop)

	events := make(chan bool, 4)
	engine.Notify(func(playing bool) { events <- playing })

	if err := engine.Speak("0.05"); err != nil {
		t.Fatalf("speak failed: %v", err)
	}

	select {
	case playing := <-events:
		if !playing {
			t.Error("expected a start event first")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no start event")
	}
	select {
	case playing := <-events:
		if playing {
			t.Error("expected an end event")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no end event")
	}
}
