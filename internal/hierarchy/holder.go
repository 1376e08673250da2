package hierarchy

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Holder shares one Snapshot across all engine workers. Reads are
// lock-free; Refresh builds a new snapshot and swaps it in atomically,
// so in-flight readers keep the snapshot they started with.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates a Holder seeded with the given snapshot.
func NewHolder(s *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Current returns the active snapshot.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Refresh fetches the unit set from the provider, builds a new snapshot
// and swaps it in. On error the previous snapshot stays active.
func (h *Holder) Refresh(ctx context.Context, p Provider) error {
	units, err := p.Units(ctx)
	if err != nil {
		return fmt.Errorf("fetch units: %w", err)
	}
	snap, err := Build(units)
	if err != nil {
		return fmt.Errorf("build hierarchy snapshot: %w", err)
	}
	h.current.Store(snap)
	return nil
}
