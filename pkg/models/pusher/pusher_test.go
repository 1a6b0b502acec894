package pusher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	mu    sync.Mutex
	lines []string
	fail  bool
}

func (s *sink) push(lines ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return errors.New("sink down")
	}
	s.lines = append(s.lines, lines...)
	return nil
}

func (s *sink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.lines...)
}

func TestPushAllKeepsOrder(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push), WithElements("a"))
	p.AddMessages("b", "c")

	require.NoError(t, p.PushAll())
	assert.Equal(t, []string{"a", "b", "c"}, s.snapshot())
	assert.Zero(t, p.Len())
}

func TestFailedPushKeepsMessages(t *testing.T) {
	s := &sink{fail: true}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages("a", "b")

	require.Error(t, p.PushAll())
	p.AddMessages("c")
	assert.Equal(t, 3, p.Len())

	s.fail = false
	require.NoError(t, p.PushAll())
	assert.Equal(t, []string{"a", "b", "c"}, s.snapshot())
}

func TestStartPushesOnInterval(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[string](10*time.Millisecond))
	p.Start()
	p.AddMessages("tick")

	assert.Eventually(t, func() bool { return len(s.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Stop())
}

func TestStopFlushes(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[string](time.Hour))
	p.Start()
	p.AddMessages("last")

	require.NoError(t, p.Stop())
	assert.Equal(t, []string{"last"}, s.snapshot())
	require.NoError(t, p.Stop())
}

func TestStopWithoutStart(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages("x")

	require.NoError(t, p.Stop())
	assert.Equal(t, []string{"x"}, s.snapshot())
}

func TestErrorHandlerReceivesLoopErrors(t *testing.T) {
	s := &sink{fail: true}
	errs := make(chan error, 8)
	p := NewPusher(
		WithPushLogic(s.push),
		WithPushInterval[string](5*time.Millisecond),
		WithErrorHandler[string](func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	p.AddMessages("x")
	p.Start()

	select {
	case err := <-errs:
		assert.EqualError(t, err, "sink down")
	case <-time.After(time.Second):
		t.Fatal("no error reported")
	}

	s.mu.Lock()
	s.fail = false
	s.mu.Unlock()
	require.NoError(t, p.Stop())
}
