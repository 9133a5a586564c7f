package output

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickpick/internal/domain"
	"quickpick/internal/ui/services/events"
)

type recordingSink struct {
	name string
	sent []string
	err  error
}

func (r *recordingSink) Name() string { return r.name }

func (r *recordingSink) Send(ctx context.Context, text string) error {
	r.sent = append(r.sent, text)
	return r.err
}

func TestExtractUsesGlyphField(t *testing.T) {
	m := domain.Match{Name: "face (with) parens", Glyph: "🫠"}
	assert.Equal(t, "🫠", Extract(m))
	assert.Equal(t, "face (with) parens (🫠)", m.Label())
}

func TestDeliverSendsOnce(t *testing.T) {
	sink := &recordingSink{name: "rec"}
	rec := events.NewRecorder()

	err := Deliver(context.Background(), sink, domain.Match{Name: "fire", Glyph: "🔥"}, rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"🔥"}, sink.sent)
	assert.Equal(t, []domain.DomainEvent{domain.DeliveredEvent{Text: "🔥", Sink: "rec"}}, rec.Events())
}

func TestDeliverErrors(t *testing.T) {
	failing := &recordingSink{name: "rec", err: errors.New("boom")}
	err := Deliver(context.Background(), failing, domain.Match{Glyph: "🔥"}, nil)
	assert.ErrorContains(t, err, "rec sink: boom")

	err = Deliver(context.Background(), &recordingSink{name: "rec"}, domain.Match{Name: "blank"}, nil)
	assert.Error(t, err)
}

func TestStdoutSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewStdoutSink(&buf).Send(context.Background(), "🎉"))
	assert.Equal(t, "🎉\n", buf.String())
}

func TestMultiSinkContinuesPastFailures(t *testing.T) {
	a := &recordingSink{name: "a", err: errors.New("down")}
	b := &recordingSink{name: "b"}
	m := MultiSink{a, b}

	err := m.Send(context.Background(), "🚀")
	assert.ErrorContains(t, err, "a: down")
	assert.Equal(t, []string{"🚀"}, b.sent)
	assert.Equal(t, "a+b", m.Name())
}

func TestNewSink(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Stdout: &buf, Delay: 10 * time.Millisecond}

	s, err := NewSink([]string{"stdout"}, opts)
	require.NoError(t, err)
	assert.IsType(t, &StdoutSink{}, s)

	s, err = NewSink([]string{"Stdout", " clipboard", "type", "notify"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "stdout+clipboard+type+notify", s.Name())

	_, err = NewSink([]string{"printer"}, opts)
	assert.ErrorIs(t, err, ErrUnknownSink)

	_, err = NewSink(nil, opts)
	assert.ErrorIs(t, err, ErrUnknownSink)
}

func TestClipboardSinkWrites(t *testing.T) {
	var got string
	s := &ClipboardSink{write: func(text string) error {
		got = text
		return nil
	}}
	require.NoError(t, s.Send(context.Background(), "😀"))
	assert.Equal(t, "😀", got)
}

func TestTypeSinkRunsXdotoolAfterDelay(t *testing.T) {
	var gotName string
	var gotArgs []string
	s := NewTypeSink(20 * time.Millisecond)
	s.run = func(ctx context.Context, name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	start := time.Now()
	require.NoError(t, s.Send(context.Background(), "😀"))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	assert.Equal(t, "xdotool", gotName)
	assert.Equal(t, []string{"type", "--delay", "20", "--", "😀"}, gotArgs)
}

func TestTypeSinkHonoursCancellation(t *testing.T) {
	s := NewTypeSink(time.Hour)
	s.run = func(ctx context.Context, name string, args ...string) error {
		t.Fatal("must not run after cancellation")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, "😀"), context.Canceled)
}
