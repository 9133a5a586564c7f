// Package output hands the committed glyph to the outside world.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"quickpick/internal/domain"
	"quickpick/internal/ui/services/events"
)

// Sink names accepted by NewSink
const (
	SinkStdout    = "stdout"
	SinkClipboard = "clipboard"
	SinkType      = "type"
	SinkNotify    = "notify"
)

// ErrUnknownSink is returned by NewSink for an unsupported name
var ErrUnknownSink = errors.New("unknown sink")

// Sink receives the committed text
type Sink interface {
	Send(ctx context.Context, text string) error
	Name() string
}

// Options configures the sinks built by NewSink
type Options struct {
	Stdout io.Writer     // defaults to os.Stdout
	Delay  time.Duration // pause before typing into the focused window
}

// Extract returns the text to emit for a committed match
func Extract(m domain.Match) string {
	return m.Glyph
}

// Deliver sends the committed match to sink exactly once
func Deliver(ctx context.Context, sink Sink, m domain.Match, bus events.EventBus) error {
	text := Extract(m)
	if text == "" {
		return fmt.Errorf("match %q has no glyph", m.Name)
	}
	if err := sink.Send(ctx, text); err != nil {
		return fmt.Errorf("%s sink: %w", sink.Name(), err)
	}

	if bus != nil {
		bus.Publish(domain.DeliveredEvent{Text: text, Sink: sink.Name()})
	}
	return nil
}

// NewSink builds the sinks named in names. More than one name yields a
// MultiSink that sends to each in order.
func NewSink(names []string, opts Options) (Sink, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	var sinks []Sink
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case SinkStdout:
			sinks = append(sinks, NewStdoutSink(opts.Stdout))
		case SinkClipboard:
			sinks = append(sinks, NewClipboardSink())
		case SinkType:
			sinks = append(sinks, NewTypeSink(opts.Delay))
		case SinkNotify:
			sinks = append(sinks, NewNotifySink())
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSink, name)
		}
	}

	switch len(sinks) {
	case 0:
		return nil, fmt.Errorf("%w: none configured", ErrUnknownSink)
	case 1:
		return sinks[0], nil
	default:
		return MultiSink(sinks), nil
	}
}

// StdoutSink writes the text followed by a newline
type StdoutSink struct {
	w io.Writer
}

// NewStdoutSink creates a sink writing to w
func NewStdoutSink(w io.Writer) *StdoutSink {
	return &StdoutSink{w: w}
}

func (s *StdoutSink) Name() string { return SinkStdout }

// Send implements Sink
func (s *StdoutSink) Send(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// MultiSink sends to every sink, continuing past failures
type MultiSink []Sink

func (m MultiSink) Name() string {
	names := make([]string, len(m))
	for i, s := range m {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

// Send implements Sink
func (m MultiSink) Send(ctx context.Context, text string) error {
	var errs []error
	for _, s := range m {
		if err := s.Send(ctx, text); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}
