package gateway

import (
	"context"
	"io"
)

type BackendKind string

const (
	BackendDocumentStore BackendKind = "documentstore"
	BackendCache         BackendKind = "cache"
	BackendBroker        BackendKind = "broker"
)

type Status string

const (
	StatusConnected    Status = "connected"
	StatusNotConnected Status = "not connected"
	StatusDisabled     Status = "disabled"
)

// Handle owns one backend's session and availability state. Connect never
// treats a failed attempt as fatal: the handle logs, stays unavailable and
// waits to be asked again. OnError and OnClose demote the handle; nothing
// re-invokes Connect after a mid-session loss.
type Handle interface {
	io.Closer

	Kind() BackendKind
	Connect(ctx context.Context) error
	OnError(err error)
	OnClose()
	IsAvailable() bool
	Status() Status
}

type Snapshot map[BackendKind]Status

type Registry interface {
	Snapshot() Snapshot
}

type Server interface {
	io.Closer

	Start() error
}
