package protocol

import (
	"github.com/Ko-stant/outlook-map/internal/geometry"
	"github.com/Ko-stant/outlook-map/internal/surface"
)

const ProtocolVersion = "v1"

type AvatarLite struct {
	ID       string         `json:"id"`
	Handle   surface.Handle `json:"handle"`
	Position geometry.Point `json:"position"`
	Radius   float64        `json:"radius"`
}

type PathLite struct {
	Name     string           `json:"name"`
	Target   geometry.Point   `json:"target"`
	Vertices []geometry.Point `json:"vertices"`
}

type Snapshot struct {
	MapID           string            `json:"mapId"`
	Seed            uint64            `json:"seed"`
	Width           float64           `json:"width"`
	Height          float64           `json:"height"`
	Elements        []surface.Element `json:"elements"`
	Avatars         []AvatarLite      `json:"avatars"`
	Variables       map[string]any    `json:"variables"`
	ProtocolVersion string            `json:"protocolVersion"`
}
