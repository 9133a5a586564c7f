package output

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no clipboard utility available")

// ClipboardSink copies the text to the system clipboard
type ClipboardSink struct {
	write func(string) error
}

// NewClipboardSink creates a sink backed by the system clipboard
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{write: writeClipboard}
}

func (s *ClipboardSink) Name() string { return SinkClipboard }

// Send implements Sink
func (s *ClipboardSink) Send(ctx context.Context, text string) error {
	return s.write(text)
}

func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
