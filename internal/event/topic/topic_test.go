package topic

import "testing"

func TestTopicMatches(t *testing.T) {
	tests := []struct {
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"buffer.changed", "buffer.changed", true},
		{"buffer.changed", "buffer.saved", false},
		{"buffer.changed", "buffer.*", true},
		{"buffer.changed.extra", "buffer.*", false},
		{"history.undo.empty", "history.**", true},
		{"history", "history.**", true},
		{"history.undo.empty", "**.empty", true},
		{"history.redo.empty", "history.*.empty", true},
		{"history.redo.done", "history.*.empty", false},
		{"export.completed", "**", true},
		{"export", "*", true},
		{"export.completed", "*", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic)+"~"+string(tt.pattern), func(t *testing.T) {
			if got := tt.topic.Matches(tt.pattern); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopicParentChild(t *testing.T) {
	tp := Topic("history").Child("undo").Child("empty")
	if tp != "history.undo.empty" {
		t.Errorf("Child() = %q", tp)
	}
	if tp.Parent() != "history.undo" {
		t.Errorf("Parent() = %q", tp.Parent())
	}
	if Topic("root").Parent() != "" {
		t.Error("Parent() of root should be empty")
	}
	if len(tp.Segments()) != 3 {
		t.Errorf("Segments() = %v", tp.Segments())
	}
}
