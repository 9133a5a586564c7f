package output

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// TypeSink types the text into the focused window with xdotool.
// It waits for the input delay first so the picker window has closed and
// focus has returned; a shorter delay can drop the text.
type TypeSink struct {
	delay time.Duration
	run   func(ctx context.Context, name string, args ...string) error
}

// NewTypeSink creates a sink that types after delay
func NewTypeSink(delay time.Duration) *TypeSink {
	return &TypeSink{delay: delay, run: runCommand}
}

func (s *TypeSink) Name() string { return SinkType }

// Send implements Sink
func (s *TypeSink) Send(ctx context.Context, text string) error {
	if err := sleep(ctx, s.delay); err != nil {
		return err
	}
	perKey := strconv.FormatInt(s.delay.Milliseconds(), 10)
	return s.run(ctx, "xdotool", "type", "--delay", perKey, "--", text)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, out)
	}
	return nil
}
