package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	IntentDragAvatar = "RequestDragAvatar"
	IntentRegenerate = "RequestRegenerate"
)

var ErrEmptyIntent = errors.New("intent has no type")

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestDragAvatar carries the absolute position of one drag-move tick. The
// avatar is the one owned by the sending connection.
type RequestDragAvatar struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RequestRegenerate struct {
	Seed uint64 `json:"seed"`
}

func DecodeIntent(data []byte) (IntentEnvelope, error) {
	var env IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return env, fmt.Errorf("decode intent: %w", err)
	}
	if env.Type == "" {
		return env, ErrEmptyIntent
	}
	return env, nil
}

// DecodePayload unmarshals the envelope payload into v.
func (e IntentEnvelope) DecodePayload(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("%s: missing payload", e.Type)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("%s payload: %w", e.Type, err)
	}
	return nil
}
