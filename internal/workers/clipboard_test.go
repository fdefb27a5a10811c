package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	mu       sync.Mutex
	content  string
	writes   int
	writeErr error
}

func (f *fakeClipboard) ReadAll() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content, nil
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.content = text
	f.writes++
	return nil
}

func (f *fakeClipboard) get() string {
	s, _ := f.ReadAll()
	return s
}

func (f *fakeClipboard) set(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = s
}

func startCleaner(t *testing.T, board Clipboard, ttl time.Duration) (*ClipboardCleaner, context.CancelFunc) {
	t.Helper()
	c := NewClipboardCleaner(board, ttl, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return c, cancel
}

func TestClipboardCleaner_ClearsAfterTTL(t *testing.T) {
	board := &fakeClipboard{}
	c, _ := startCleaner(t, board, 30*time.Millisecond)

	require.NoError(t, c.Copy("hunter2"))
	assert.Equal(t, "hunter2", board.get())

	assert.Eventually(t, func() bool { return board.get() == "" }, time.Second, 5*time.Millisecond)
}

func TestClipboardCleaner_LeavesForeignContent(t *testing.T) {
	board := &fakeClipboard{}
	c, _ := startCleaner(t, board, 30*time.Millisecond)

	require.NoError(t, c.Copy("hunter2"))
	board.set("something the user copied")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "something the user copied", board.get())
}

func TestClipboardCleaner_NewCopyRestartsCountdown(t *testing.T) {
	board := &fakeClipboard{}
	c, _ := startCleaner(t, board, 200*time.Millisecond)

	require.NoError(t, c.Copy("first"))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, c.Copy("second"))
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, "second", board.get())
	assert.Eventually(t, func() bool { return board.get() == "" }, time.Second, 5*time.Millisecond)
}

func TestClipboardCleaner_ClearsOnStop(t *testing.T) {
	board := &fakeClipboard{}
	c, cancel := startCleaner(t, board, time.Hour)

	require.NoError(t, c.Copy("hunter2"))
	// let Run pick up the copy before stopping it
	assert.Eventually(t, func() bool { return len(c.copied) == 0 }, time.Second, time.Millisecond)
	cancel()

	assert.Eventually(t, func() bool { return board.get() == "" }, time.Second, 5*time.Millisecond)
}

func TestClipboardCleaner_DisabledTTL(t *testing.T) {
	board := &fakeClipboard{}
	c, _ := startCleaner(t, board, 0)

	require.NoError(t, c.Copy("hunter2"))
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, "hunter2", board.get())
	assert.Zero(t, c.TTL())
}

func TestClipboardCleaner_CopyError(t *testing.T) {
	board := &fakeClipboard{writeErr: errors.New("no display")}
	c := NewClipboardCleaner(board, time.Second, logger.Nop())

	err := c.Copy("hunter2")

	assert.ErrorContains(t, err, "no display")
	assert.Empty(t, c.copied)
}
