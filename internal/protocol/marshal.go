package protocol

import (
	"encoding/json"
	"fmt"
)

// Envelope is the frame every message travels in: a type tag and the raw
// payload. Decoding is two-step so a reader can dispatch on Type without
// knowing every payload shape.
type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// typeOf maps payload values to their wire tag.
func typeOf(v any) (MessageType, bool) {
	switch v.(type) {
	case *Join, Join:
		return TypeJoin, true
	case *Act, Act:
		return TypeAct, true
	case *Welcome, Welcome:
		return TypeWelcome, true
	case *HandStart, HandStart:
		return TypeHandStart, true
	case *ActionRequest, ActionRequest:
		return TypeActionRequest, true
	case *TableUpdate, TableUpdate:
		return TypeTableUpdate, true
	case *PlayerActed, PlayerActed:
		return TypePlayerActed, true
	case *StreetDealt, StreetDealt:
		return TypeStreetDealt, true
	case *HandResult, HandResult:
		return TypeHandResult, true
	case *Error, Error:
		return TypeError, true
	}
	return "", false
}

// Marshal wraps a message in its envelope and encodes the frame.
func Marshal(v any) ([]byte, error) {
	mt, ok := typeOf(v)
	if !ok {
		return nil, fmt.Errorf("protocol: unknown message type %T", v)
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("protocol: encoding %s payload: %w", mt, err)
	}
	return json.Marshal(Envelope{Type: mt, Payload: payload})
}

// Decode parses a frame into its envelope.
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("protocol: decoding envelope: %w", err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("protocol: envelope has no type")
	}
	return env, nil
}

// Unmarshal decodes an envelope's payload into the given message, checking
// that the tag matches the destination type.
func (e Envelope) Unmarshal(v any) error {
	want, ok := typeOf(v)
	if !ok {
		return fmt.Errorf("protocol: unknown message type %T", v)
	}
	if e.Type != want {
		return fmt.Errorf("protocol: envelope is %s, not %s", e.Type, want)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("protocol: decoding %s payload: %w", e.Type, err)
	}
	return nil
}
