package s3

import (
	"io"
	"strings"
	"testing"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/file.pdf", want: "user/file.pdf"},
		{name: "simple prefix", prefix: "uploads", key: "user/file.pdf", want: "uploads/user/file.pdf"},
		{name: "prefix trailing slash", prefix: "uploads/", key: "user/file.pdf", want: "uploads/user/file.pdf"},
		{name: "prefix and key slashes", prefix: "/uploads/", key: "/user/file.pdf", want: "uploads/user/file.pdf"},
		{name: "nested prefix", prefix: "uploads/resumes", key: "user/file.pdf", want: "uploads/resumes/user/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestCountingReader(t *testing.T) {
	t.Parallel()

	counter := &countingReader{r: strings.NewReader("resume bytes")}
	if _, err := io.ReadAll(counter); err != nil {
		t.Fatalf("read: %v", err)
	}
	if counter.n != int64(len("resume bytes")) {
		t.Fatalf("expected %d bytes counted, got %d", len("resume bytes"), counter.n)
	}
}
