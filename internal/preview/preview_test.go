package preview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name                  string
		markup, style, script string
		want                  string
	}{
		{
			name: "empty",
			want: "<!DOCTYPE html><html><head><style></style></head><body><script></script></body></html>",
		},
		{
			name:   "all buffers",
			markup: "<h1>Hi</h1>",
			style:  "h1{color:red}",
			script: "console.log(1)",
			want:   "<!DOCTYPE html><html><head><style>h1{color:red}</style></head><body><h1>Hi</h1><script>console.log(1)</script></body></html>",
		},
		{
			name:   "verbatim content",
			markup: "  <p>\n</p>  ",
			want:   "<!DOCTYPE html><html><head><style></style></head><body>  <p>\n</p>  <script></script></body></html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.markup, tt.style, tt.script); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.html")
	s := NewFileSink(path)

	doc := Render("<p>x</p>", "", "")
	if err := s.Show(doc); err != nil {
		t.Fatalf("Show: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != doc {
		t.Errorf("file = %q, want %q", got, doc)
	}

	other := filepath.Join(t.TempDir(), "other.html")
	s.SetPath(other)
	if err := s.Show("next"); err != nil {
		t.Fatalf("Show after SetPath: %v", err)
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("Stat(new path): %v", err)
	}
}

func TestFileSinkNoPath(t *testing.T) {
	s := NewFileSink("")
	if err := s.Show("x"); !errors.Is(err, ErrNoPath) {
		t.Errorf("Show() error = %v, want ErrNoPath", err)
	}
}

func TestSinkFunc(t *testing.T) {
	var got string
	var s Sink = SinkFunc(func(doc string) error {
		got = doc
		return nil
	})
	if err := s.Show("doc"); err != nil {
		t.Fatal(err)
	}
	if got != "doc" {
		t.Errorf("got %q, want %q", got, "doc")
	}
	if err := Discard.Show("x"); err != nil {
		t.Errorf("Discard.Show() = %v", err)
	}
}
