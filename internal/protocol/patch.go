package protocol

import "github.com/Ko-stant/outlook-map/internal/geometry"

const (
	PatchVariablesChanged = "VariablesChanged"
	PatchAvatarJoined     = "AvatarJoined"
	PatchAvatarPlaced     = "AvatarPlaced"
	PatchAvatarMoved      = "AvatarMoved"
	PatchAvatarLeft       = "AvatarLeft"
	PatchMapGenerated     = "MapGenerated"
)

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type VariablesChanged struct {
	Entries map[string]any `json:"entries"`
}

type AvatarJoined struct {
	Avatar AvatarLite `json:"avatar"`
	// Self is set only on the copy sent to the joining connection.
	Self bool `json:"self,omitempty"`
}

type AvatarPlaced struct {
	ID   string         `json:"id"`
	From geometry.Point `json:"from"`
	To   geometry.Point `json:"to"`
}

type AvatarMoved struct {
	ID       string         `json:"id"`
	Position geometry.Point `json:"position"`
}

type AvatarLeft struct {
	ID string `json:"id"`
}

type MapGenerated struct {
	Seed     uint64     `json:"seed"`
	Snapshot Snapshot   `json:"snapshot"`
	Paths    []PathLite `json:"paths"`
	Skipped  []int      `json:"skipped,omitempty"`
}
