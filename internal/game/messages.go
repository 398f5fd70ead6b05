package game

import (
	"encoding/json"
	"fmt"
)

// Message type for WebSocket communication between client and server.
// The channel carries only advisory live stats; the game itself runs
// entirely in the client.
type MessageType string

const (
	MsgTypeHello  MessageType = "hello"  // Client announces itself
	MsgTypeSolved MessageType = "solved" // Client reports a stabilized reactor
	MsgTypeStats  MessageType = "stats"  // Server broadcasts aggregate stats
	MsgTypeError  MessageType = "error"  // Server sends an error message
)

// WsMessage represents a WebSocket message.
type WsMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewWsMessage creates a new WsMessage with a marshaled payload.
func NewWsMessage(msgType MessageType, payload interface{}) (WsMessage, error) {
	if payload == nil {
		return WsMessage{Type: msgType}, nil
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return WsMessage{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return WsMessage{
		Type:    msgType,
		Payload: payloadBytes,
	}, nil
}

// Parse unmarshals the message payload into one of the message types
// (HelloMessage, SolvedMessage, etc.)
func (m *WsMessage) Parse() (any, error) {
	var target any
	switch m.Type {
	case MsgTypeHello:
		target = &HelloMessage{}
	case MsgTypeSolved:
		target = &SolvedMessage{}
	case MsgTypeStats:
		target = &StatsMessage{}
	case MsgTypeError:
		target = &ErrorMessage{}
	default:
		return nil, fmt.Errorf("unknown message type: %s", m.Type)
	}

	if len(m.Payload) == 0 {
		return target, nil
	}

	err := json.Unmarshal(m.Payload, target)
	return target, err
}

// HelloMessage is the payload for MsgTypeHello
type HelloMessage struct {
	Name string `json:"name"` // Display name, may be empty
}

// SolvedMessage is the payload for MsgTypeSolved
type SolvedMessage struct {
	Level int `json:"level"` // Level that was solved
	Moves int `json:"moves"` // Taps the solve took
	Stars int `json:"stars"` // Score awarded (1..3)
}

// StatsMessage is the payload for MsgTypeStats
type StatsMessage struct {
	PlayersOnline      int `json:"players_online"`      // Currently connected clients
	ReactorsStabilized int `json:"reactors_stabilized"` // Solves reported since server start
}

// ErrorMessage is the payload for MsgTypeError
type ErrorMessage struct {
	Message string `json:"message"`
}
