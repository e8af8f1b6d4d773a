package events

import "github.com/Sadvi2004/CodeForge/internal/event/topic"

// Export and preview topics.
const (
	// TopicExportCompleted is published after an archive was handed to the export sink.
	TopicExportCompleted topic.Topic = "export.completed"

	// TopicPreviewRendered is published after the preview sink accepted a document.
	TopicPreviewRendered topic.Topic = "preview.rendered"

	// TopicConfigReloaded is published after the config file was reloaded.
	TopicConfigReloaded topic.Topic = "config.reloaded"
)

// ExportCompleted is the payload for TopicExportCompleted.
type ExportCompleted struct {
	Name    string
	Size    int
	Entries int
}

// PreviewRendered is the payload for TopicPreviewRendered.
type PreviewRendered struct {
	Size int
}

// ConfigReloaded is the payload for TopicConfigReloaded.
type ConfigReloaded struct {
	Path string
}
