package main

import (
	"fmt"

	"github.com/Ko-stant/outlook-map/internal/protocol"
)

// Handlers turn engine results into patches for every connected client
type Handlers struct {
	engine      MapEngine
	broadcaster Broadcaster
	logger      Logger
	regenerate  bool
}

func NewHandlers(engine MapEngine, broadcaster Broadcaster, logger Logger) *Handlers {
	return &Handlers{
		engine:      engine,
		broadcaster: broadcaster,
		logger:      logger,
		regenerate:  true,
	}
}

// DisableRegenerate makes RequestRegenerate intents fail without touching
// the map.
func (h *Handlers) DisableRegenerate() {
	h.regenerate = false
}

func (h *Handlers) HandleJoin() (*JoinResult, error) {
	result, err := h.engine.Join()
	if err != nil {
		h.logger.Printf("Join failed: %v", err)
		return nil, err
	}

	h.broadcaster.BroadcastEvent(protocol.PatchAvatarJoined, protocol.AvatarJoined{Avatar: result.Avatar})
	h.broadcaster.BroadcastEvent(protocol.PatchAvatarPlaced, result.Placement)
	return result, nil
}

// HandleDrag broadcasts accepted moves only. Rejected moves produce no
// patch: the client's marker simply stays where it was.
func (h *Handlers) HandleDrag(avatarID string, req protocol.RequestDragAvatar) error {
	result, err := h.engine.ProcessDrag(avatarID, req)
	if err != nil {
		h.logger.Printf("Drag failed: %v", err)
		return err
	}
	if result.Accepted && result.Moved != nil {
		h.broadcaster.BroadcastEvent(protocol.PatchAvatarMoved, *result.Moved)
	}
	return nil
}

func (h *Handlers) HandleRegenerate(req protocol.RequestRegenerate) error {
	result, err := h.engine.Regenerate(req)
	if err != nil {
		h.logger.Printf("Regenerate failed: %v", err)
		return err
	}

	h.broadcaster.BroadcastEvent(protocol.PatchMapGenerated, result.Generated)
	for _, p := range result.Placements {
		h.broadcaster.BroadcastEvent(protocol.PatchAvatarPlaced, p)
	}
	return nil
}

func (h *Handlers) HandleLeave(avatarID string) error {
	left, err := h.engine.Leave(avatarID)
	if err != nil {
		h.logger.Printf("Leave failed: %v", err)
		return err
	}
	h.broadcaster.BroadcastEvent(protocol.PatchAvatarLeft, *left)
	return nil
}

// HandleIntent dispatches one decoded client intent on behalf of avatarID.
func (h *Handlers) HandleIntent(avatarID string, env protocol.IntentEnvelope) error {
	switch env.Type {
	case protocol.IntentDragAvatar:
		var req protocol.RequestDragAvatar
		if err := env.DecodePayload(&req); err != nil {
			return &EngineError{Code: CodeBadPayload, Message: err.Error()}
		}
		return h.HandleDrag(avatarID, req)
	case protocol.IntentRegenerate:
		if !h.regenerate {
			return &EngineError{Code: CodeRegenerateDisabled, Message: fmt.Sprintf("avatar %s asked for a new map", avatarID)}
		}
		var req protocol.RequestRegenerate
		if err := env.DecodePayload(&req); err != nil {
			return &EngineError{Code: CodeBadPayload, Message: err.Error()}
		}
		return h.HandleRegenerate(req)
	}
	return &EngineError{Code: CodeUnknownIntent, Message: fmt.Sprintf("intent %q", env.Type)}
}
