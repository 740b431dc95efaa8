package dto

import (
	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
)

// Source tells the client whether rows came from the upstream or from the
// built-in sample set.
type Source string

const (
	SourceLive   Source = "live"
	SourceSample Source = "sample"
)

type MessageLevel string

const (
	LevelInfo  MessageLevel = "info"
	LevelError MessageLevel = "error"
)

// Message is a non-blocking notice shown next to the results.
type Message struct {
	Level MessageLevel   `json:"level"`
	Kind  exception.Kind `json:"kind"`
	Text  string         `json:"text"`
}

func InfoMessage(kind exception.Kind, text string) *Message {
	return &Message{Level: LevelInfo, Kind: kind, Text: text}
}

func ErrorMessage(kind exception.Kind, text string) *Message {
	return &Message{Level: LevelError, Kind: kind, Text: text}
}
