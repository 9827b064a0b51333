// Package registry aggregates the backend handles into a single queryable
// availability snapshot. It keeps no state of its own; every snapshot is
// computed from the handles at query time.
package registry

import (
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

type availabilityRegistry struct {
	handles []gateway.Handle
}

func New(handles ...gateway.Handle) gateway.Registry {
	return &availabilityRegistry{handles: handles}
}

func (r *availabilityRegistry) Snapshot() gateway.Snapshot {
	result := make(gateway.Snapshot, len(r.handles))

	for _, handle := range r.handles {
		result[handle.Kind()] = handle.Status()
	}

	return result
}
