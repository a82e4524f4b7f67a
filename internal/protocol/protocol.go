package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// A command name carried in an envelope.
type Command string

// Commands understood by the daemon, plus the two response commands.
const (
	CmdBuild            Command = "build"
	CmdPull             Command = "pull"
	CmdImageImport      Command = "image-import"
	CmdImageStart       Command = "image-start"
	CmdImageDestroy     Command = "image-destroy"
	CmdContainerStop    Command = "container-stop"
	CmdContainerStatus  Command = "container-status"
	CmdContainerDestroy Command = "container-destroy"
	CmdContainerExec    Command = "container-exec"
	CmdStatus           Command = "status"
	CmdShutdown         Command = "shutdown"

	CmdOK    Command = "ok"
	CmdError Command = "error"
)

// Lifecycle state of a container as reported by the daemon.
type ContainerState string

const (
	ContainerRunning    ContainerState = "running"
	ContainerStopped    ContainerState = "stopped"
	ContainerNotCreated ContainerState = "not-created"
)

var (
	ErrEmptyMessage   = errors.New("empty message")
	ErrMissingCommand = errors.New("missing command")
)

// The outer message frame.
type Envelope struct {
	Command Command         `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Serializes a command and payload into an envelope.
//
// A nil payload produces an envelope without a payload field.
func Encode(cmd Command, payload any) ([]byte, error) {
	env := Envelope{Command: cmd}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		env.Payload = raw
	}

	return json.Marshal(env)
}

// Parses an envelope from a single message.
//
// Returns the envelope and its raw payload for command-specific decoding
// via [DecodePayload].
func Decode(data []byte) (Envelope, json.RawMessage, error) {
	if len(data) == 0 {
		return Envelope{}, nil, ErrEmptyMessage
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, nil, fmt.Errorf("decode envelope: %w", err)
	}

	if env.Command == "" {
		return Envelope{}, nil, ErrMissingCommand
	}

	return env, env.Payload, nil
}

// Decodes a raw payload into the request or result type for a command.
func DecodePayload[T any](raw json.RawMessage) (*T, error) {
	var payload T
	if len(raw) == 0 {
		return &payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &payload, nil
}
