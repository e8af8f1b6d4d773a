package events

import "github.com/Sadvi2004/CodeForge/internal/event/topic"

// Notice topics. Notices are short user-facing messages.
const (
	TopicNotice topic.Topic = "notice"
)

// Severity classifies a notice.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// Notice is the payload for TopicNotice.
type Notice struct {
	Message  string
	Severity Severity
}
