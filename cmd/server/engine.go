package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Ko-stant/outlook-map/internal/avatar"
	"github.com/Ko-stant/outlook-map/internal/geometry"
	"github.com/Ko-stant/outlook-map/internal/mapgen"
	"github.com/Ko-stant/outlook-map/internal/protocol"
	"github.com/Ko-stant/outlook-map/internal/surface"
)

// EngineConfig holds what the engine needs to lay out a map
type EngineConfig struct {
	MapID        string
	Viewport     geometry.Viewport
	Seed         uint64
	AvatarRadius float64
	Points       []mapgen.PointOfInterest
}

// MapEngineImpl implements the MapEngine interface
type MapEngineImpl struct {
	mu        sync.Mutex
	cfg       EngineConfig
	logger    Logger
	scene     *surface.Scene
	current   *mapgen.Map
	generated protocol.MapGenerated
	avatars   map[string]*avatar.Avatar
	order     []string
	newID     func() string
}

// NewMapEngine creates the engine and generates the initial map
func NewMapEngine(cfg EngineConfig, logger Logger) (*MapEngineImpl, error) {
	if logger == nil {
		logger = NewLogger(nil)
	}
	e := &MapEngineImpl{
		cfg:     cfg,
		logger:  logger,
		scene:   surface.NewScene(),
		avatars: make(map[string]*avatar.Avatar),
		newID:   uuid.NewString,
	}
	if cfg.MapID == "" {
		e.cfg.MapID = "outlook-map"
	}
	if err := e.generate(cfg.Seed); err != nil {
		return nil, err
	}
	return e, nil
}

// generate lays out a fresh map on a scene emptied of everything but keep.
// On failure the scene and the current map are left as they were. Callers
// hold mu, or are the constructor.
func (e *MapEngineImpl) generate(seed uint64, keep ...surface.Handle) error {
	saved := e.scene.Checkpoint()
	e.scene.Clear(keep...)

	var generated *protocol.MapGenerated
	gen := mapgen.New(e.cfg.Viewport, mapgen.NewRand(seed), e.scene,
		mapgen.WithLogger(e.logger),
		mapgen.WithOnGenerated(func(m *mapgen.Map) {
			generated = &protocol.MapGenerated{Seed: seed, Paths: pathsLite(m), Skipped: m.Skipped}
		}))

	m, err := gen.Generate(e.cfg.Points)
	if err == nil && generated == nil {
		err = errors.New("completion not signalled")
	}
	if err != nil {
		e.scene.Restore(saved)
		return fmt.Errorf("generate map (seed %d): %w", seed, err)
	}
	e.current = m
	e.generated = *generated
	e.cfg.Seed = seed
	return nil
}

func pathsLite(m *mapgen.Map) []protocol.PathLite {
	out := make([]protocol.PathLite, 0, len(m.Paths))
	for _, p := range m.Paths {
		vertices := []geometry.Point{m.Hub.Center()}
		for _, s := range p.Segments {
			_, to := s.Endpoints()
			vertices = append(vertices, to)
		}
		out = append(out, protocol.PathLite{Name: p.Name, Target: p.Target, Vertices: vertices})
	}
	return out
}

func (e *MapEngineImpl) Join() (*JoinResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.newID()
	if _, exists := e.avatars[id]; exists {
		return nil, &EngineError{Code: CodeDuplicateAvatar, Message: id}
	}
	a := avatar.Create(id, e.cfg.AvatarRadius, surface.StyleAvatar, e.scene)
	placement, err := a.Attach(e.current)
	if err != nil {
		a.Detach()
		return nil, fmt.Errorf("join: %w", err)
	}
	e.avatars[id] = a
	e.order = append(e.order, id)

	e.logger.Printf("avatar %s joined at (%g,%g) with %d zones", id, placement.To.X, placement.To.Y, a.ZoneCount())

	return &JoinResult{
		Avatar:    avatarLite(a),
		Placement: protocol.AvatarPlaced{ID: id, From: placement.From, To: placement.To},
	}, nil
}

func avatarLite(a *avatar.Avatar) protocol.AvatarLite {
	return protocol.AvatarLite{ID: a.ID(), Handle: a.Handle(), Position: a.Position(), Radius: a.Radius()}
}

// ProcessDrag feeds one drag tick through the scene's input dispatch to the
// avatar. A rejected move returns Accepted=false and no error.
func (e *MapEngineImpl) ProcessDrag(avatarID string, req protocol.RequestDragAvatar) (*DragResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.avatars[avatarID]
	if !ok {
		return nil, &EngineError{Code: CodeUnknownAvatar, Message: avatarID}
	}

	accepted, ok := e.scene.Drag(a.Handle(), req.X, req.Y)
	if !ok {
		return nil, &EngineError{Code: CodeNoDragHandler, Message: avatarID}
	}
	if !accepted {
		return &DragResult{Accepted: false}, nil
	}
	return &DragResult{
		Accepted: true,
		Moved:    &protocol.AvatarMoved{ID: avatarID, Position: a.Position()},
	}, nil
}

func (e *MapEngineImpl) Leave(avatarID string) (*protocol.AvatarLeft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.avatars[avatarID]
	if !ok {
		return nil, &EngineError{Code: CodeUnknownAvatar, Message: avatarID}
	}
	a.Detach()
	delete(e.avatars, avatarID)
	for i, id := range e.order {
		if id == avatarID {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	e.logger.Printf("avatar %s left", avatarID)
	return &protocol.AvatarLeft{ID: avatarID}, nil
}

// Regenerate replaces the map and puts every avatar back on the new hub.
func (e *MapEngineImpl) Regenerate(req protocol.RequestRegenerate) (*RegenerateResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	keep := make([]surface.Handle, 0, len(e.order))
	for _, id := range e.order {
		keep = append(keep, e.avatars[id].Handle())
	}

	if err := e.generate(req.Seed, keep...); err != nil {
		return nil, err
	}

	placements := make([]protocol.AvatarPlaced, 0, len(e.order))
	for _, id := range e.order {
		a := e.avatars[id]
		e.scene.Raise(a.Handle())
		p, err := a.Attach(e.current)
		if err != nil {
			return nil, fmt.Errorf("regenerate: %w", err)
		}
		placements = append(placements, protocol.AvatarPlaced{ID: id, From: p.From, To: p.To})
	}

	result := &RegenerateResult{Generated: e.generated, Placements: placements}
	result.Generated.Snapshot = e.snapshotLocked()
	return result, nil
}

func (e *MapEngineImpl) Snapshot() protocol.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *MapEngineImpl) snapshotLocked() protocol.Snapshot {
	avatars := make([]protocol.AvatarLite, 0, len(e.order))
	for _, id := range e.order {
		avatars = append(avatars, avatarLite(e.avatars[id]))
	}
	return protocol.Snapshot{
		MapID:           e.cfg.MapID,
		Seed:            e.cfg.Seed,
		Width:           e.cfg.Viewport.Width,
		Height:          e.cfg.Viewport.Height,
		Elements:        e.scene.Elements(),
		Avatars:         avatars,
		Variables:       map[string]any{"paths": len(e.current.Paths), "zones": len(e.current.Zones)},
		ProtocolVersion: protocol.ProtocolVersion,
	}
}
