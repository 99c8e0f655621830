// Package location provides the live-location input for GeoMerge: a
// cancellable subscription delivering geographic samples at its own
// cadence. The world model consumes samples; it never talks to a sensor
// directly.
package location

import "context"

// Sample is one position report from a feed. A failed reading carries
// Err instead of coordinates; the consumer surfaces it as a diagnostic
// and movement simply stalls until the next good sample.
type Sample struct {
	Lat float64
	Lng float64
	Err error
}

// Feed is a standing registration for position updates.
//
// Watch starts delivery on the returned channel. Cancelling the context
// fully unregisters the subscription: the channel is closed and no
// further samples arrive. Only one movement-input source is meant to be
// active at a time; the platform enforces that.
type Feed interface {
	Watch(ctx context.Context) (<-chan Sample, error)
}
