package protocol

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecodeIntent_DragAvatar(t *testing.T) {
	env, err := DecodeIntent([]byte(`{"type":"RequestDragAvatar","payload":{"x":120.5,"y":90}}`))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if env.Type != IntentDragAvatar {
		t.Fatalf("Expected type %s, got %s", IntentDragAvatar, env.Type)
	}

	var req RequestDragAvatar
	if err := env.DecodePayload(&req); err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}
	if req.X != 120.5 || req.Y != 90 {
		t.Errorf("Expected (120.5, 90), got (%v, %v)", req.X, req.Y)
	}
}

func TestDecodeIntent_Errors(t *testing.T) {
	if _, err := DecodeIntent([]byte(`{"payload":{}}`)); !errors.Is(err, ErrEmptyIntent) {
		t.Errorf("Expected ErrEmptyIntent, got %v", err)
	}
	if _, err := DecodeIntent([]byte(`not json`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}

	env, err := DecodeIntent([]byte(`{"type":"RequestRegenerate"}`))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	var req RequestRegenerate
	if err := env.DecodePayload(&req); err == nil || !strings.Contains(err.Error(), "missing payload") {
		t.Errorf("Expected missing payload error, got %v", err)
	}
}

func TestPatchEnvelope_WireNames(t *testing.T) {
	data, err := json.Marshal(PatchEnvelope{
		Sequence: 3,
		Type:     PatchAvatarMoved,
		Payload:  AvatarMoved{ID: "a1"},
	})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	got := string(data)
	for _, want := range []string{`"seq":3`, `"type":"AvatarMoved"`, `"position":{"x":0,"y":0}`} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %s in %s", want, got)
		}
	}
}
