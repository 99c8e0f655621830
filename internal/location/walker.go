package location

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Walker is a simulated location feed: a seeded random walk around a
// start position. It stands in for a GPS sensor in walk mode and in
// tests; the same seed always produces the same path.
type Walker struct {
	startLat float64
	startLng float64
	maxStep  float64
	interval time.Duration
	seed     int64
}

// NewWalker creates a walker. maxStep bounds the per-sample drift on
// each axis, in degrees.
func NewWalker(startLat, startLng, maxStep float64, interval time.Duration, seed int64) *Walker {
	return &Walker{
		startLat: startLat,
		startLng: startLng,
		maxStep:  maxStep,
		interval: interval,
		seed:     seed,
	}
}

// Watch starts the walk. Samples arrive every interval until the context
// is cancelled, at which point the channel closes and the internal
// goroutine exits.
func (w *Walker) Watch(ctx context.Context) (<-chan Sample, error) {
	if w.interval <= 0 {
		return nil, errors.New("location: walker interval must be positive")
	}
	if w.maxStep <= 0 {
		return nil, errors.New("location: walker step must be positive")
	}

	ch := make(chan Sample, 1)

	go func() {
		defer close(ch)

		rng := rand.New(rand.NewSource(w.seed))
		lat, lng := w.startLat, w.startLng

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				lat += (rng.Float64()*2 - 1) * w.maxStep
				lng += (rng.Float64()*2 - 1) * w.maxStep
				select {
				case ch <- Sample{Lat: lat, Lng: lng}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
