// Package scan turns raw scanned-code text into a player identifier.
// Payloads come in two shapes: a structured JSON blob emitted by the game's
// own badge codes, or arbitrary plain text that is taken as the identifier
// verbatim.
package scan

import (
	"encoding/json"
	"errors"
)

// PayloadTypeAuth is the discriminator of a structured player badge.
const PayloadTypeAuth = "player_auth"

// ErrMissingIdentifier is returned when a structured player_auth payload
// carries none of the identifier fields.
var ErrMissingIdentifier = errors.New("payload has no player identifier")

// payload is the structured badge shape. Identifier fields are probed in
// declared order, first non-empty wins.
type payload struct {
	Type             string `json:"type"`
	Identifier       string `json:"identificator"`
	PlayerIdentifier string `json:"player_identificator"`
	ID               string `json:"id"`
	PlayerName       string `json:"player_name"`
	Name             string `json:"name"`
}

// Resolved is the outcome of one scan: the identifier to log in or address
// a transfer with, and a human-readable label for confirmation prompts.
type Resolved struct {
	Identifier  string
	DisplayName string
}

// Resolve extracts a player identifier from one raw decoded string.
//
// A JSON payload with type "player_auth" yields the first non-empty of
// identificator, player_identificator, id, player_name — or
// ErrMissingIdentifier when all are absent. Anything else (wrong
// discriminator, malformed JSON, plain text) falls back to the raw string
// itself; ambiguity is not an error.
func Resolve(raw string) (Resolved, error) {
	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil || p.Type != PayloadTypeAuth {
		return Resolved{Identifier: raw, DisplayName: raw}, nil
	}

	id := firstNonEmpty(p.Identifier, p.PlayerIdentifier, p.ID, p.PlayerName)
	if id == "" {
		return Resolved{}, ErrMissingIdentifier
	}
	return Resolved{
		Identifier:  id,
		DisplayName: firstNonEmpty(p.PlayerName, p.Name, id),
	}, nil
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
