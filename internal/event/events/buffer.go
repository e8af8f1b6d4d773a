package events

import (
	"github.com/Sadvi2004/CodeForge/internal/engine/buffer"
	"github.com/Sadvi2004/CodeForge/internal/event/topic"
)

// Buffer event topics.
const (
	// TopicBufferChanged is published once per committed mutation, native
	// input, undo or redo.
	TopicBufferChanged topic.Topic = "buffer.changed"

	// TopicBufferFocused is published when input focus moves to another buffer.
	TopicBufferFocused topic.Topic = "buffer.focused"
)

// ChangeReason says what produced a buffer change.
type ChangeReason uint8

const (
	// ReasonMutate is a programmatic edit through the mutation engine.
	ReasonMutate ChangeReason = iota
	// ReasonInput is native text insertion or deletion.
	ReasonInput
	// ReasonUndo is an undo.
	ReasonUndo
	// ReasonRedo is a redo.
	ReasonRedo
)

// String returns the reason name.
func (r ChangeReason) String() string {
	switch r {
	case ReasonMutate:
		return "mutate"
	case ReasonInput:
		return "input"
	case ReasonUndo:
		return "undo"
	case ReasonRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// BufferChanged is the payload for TopicBufferChanged.
type BufferChanged struct {
	Kind   buffer.Kind
	Reason ChangeReason

	// UndoDepth and RedoDepth are the history stack sizes after the change.
	UndoDepth int
	RedoDepth int
}

// BufferFocused is the payload for TopicBufferFocused.
type BufferFocused struct {
	Kind buffer.Kind
}
