package location

import (
	"context"
	"testing"
	"time"
)

func collectSamples(t *testing.T, w *Walker, n int) []Sample {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}

	samples := make([]Sample, 0, n)
	for len(samples) < n {
		select {
		case s, ok := <-ch:
			if !ok {
				t.Fatal("sample channel closed early")
			}
			samples = append(samples, s)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d samples", len(samples))
		}
	}
	return samples
}

func TestWalkerDeterministicPerSeed(t *testing.T) {
	w1 := NewWalker(0, 0, 0.0001, time.Millisecond, 42)
	w2 := NewWalker(0, 0, 0.0001, time.Millisecond, 42)

	s1 := collectSamples(t, w1, 5)
	s2 := collectSamples(t, w2, 5)

	for i := range s1 {
		if s1[i] != s2[i] {
			t.Errorf("sample %d differs: %+v vs %+v", i, s1[i], s2[i])
		}
	}
}

func TestWalkerStepsAreBounded(t *testing.T) {
	const maxStep = 0.0001
	w := NewWalker(1.0, 2.0, maxStep, time.Millisecond, 7)

	samples := collectSamples(t, w, 10)

	prevLat, prevLng := 1.0, 2.0
	for i, s := range samples {
		if d := s.Lat - prevLat; d < -maxStep || d > maxStep {
			t.Errorf("sample %d lat step %v exceeds bound %v", i, d, maxStep)
		}
		if d := s.Lng - prevLng; d < -maxStep || d > maxStep {
			t.Errorf("sample %d lng step %v exceeds bound %v", i, d, maxStep)
		}
		prevLat, prevLng = s.Lat, s.Lng
	}
}

func TestWalkerCancelClosesChannel(t *testing.T) {
	w := NewWalker(0, 0, 0.0001, time.Millisecond, 1)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}

	// Let it run briefly, then unsubscribe.
	<-ch
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return // Closed as promised.
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestWalkerRejectsBadParameters(t *testing.T) {
	if _, err := NewWalker(0, 0, 0.0001, 0, 1).Watch(context.Background()); err == nil {
		t.Error("Watch() with zero interval should fail")
	}
	if _, err := NewWalker(0, 0, 0, time.Millisecond, 1).Watch(context.Background()); err == nil {
		t.Error("Watch() with zero step should fail")
	}
}
