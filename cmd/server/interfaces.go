package main

import (
	"github.com/Ko-stant/outlook-map/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...any)
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// MapEngine owns the generated map and every avatar placed on it. Calls are
// serialised, so one drag is fully handled before the next starts.
type MapEngine interface {
	Join() (*JoinResult, error)
	ProcessDrag(avatarID string, req protocol.RequestDragAvatar) (*DragResult, error)
	Leave(avatarID string) (*protocol.AvatarLeft, error)
	Regenerate(req protocol.RequestRegenerate) (*RegenerateResult, error)
	Snapshot() protocol.Snapshot
}

// JoinResult contains the new avatar and its placement on the hub
type JoinResult struct {
	Avatar    protocol.AvatarLite
	Placement protocol.AvatarPlaced
}

// DragResult contains the outcome of one drag tick. Moved is nil when the
// move was rejected.
type DragResult struct {
	Accepted bool
	Moved    *protocol.AvatarMoved
}

// RegenerateResult contains the new map and where every avatar was re-placed
type RegenerateResult struct {
	Generated  protocol.MapGenerated
	Placements []protocol.AvatarPlaced
}
