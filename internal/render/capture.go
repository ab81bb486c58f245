package render

import (
	"bytes"
	"strings"
)

// CaptureBuffer collects rendered output for tests.
type CaptureBuffer struct {
	buf bytes.Buffer
}

// NewCaptureBuffer creates a new capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer for capturing output.
func (c *CaptureBuffer) Write(p []byte) (n int, err error) {
	return c.buf.Write(p)
}

// String returns the captured output as a string.
func (c *CaptureBuffer) String() string {
	return c.buf.String()
}

// Lines returns the captured output split into lines.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// Reset clears the captured output.
func (c *CaptureBuffer) Reset() {
	c.buf.Reset()
}

// Contains checks if the captured output contains the given text.
func (c *CaptureBuffer) Contains(text string) bool {
	return strings.Contains(c.String(), text)
}

// CaptureOutput runs fn against a fresh engine writing into a buffer and
// returns everything it rendered. Options are applied on top of the
// capture writer.
func CaptureOutput(fn func(*Engine), options ...Option) string {
	buffer := NewCaptureBuffer()
	opts := append([]Option{WithWriter(buffer)}, options...)
	engine := New(opts...)
	fn(engine)
	return buffer.String()
}
