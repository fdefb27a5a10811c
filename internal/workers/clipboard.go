package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var ErrClipboardUnavailable = errors.New("clipboard is not available")

type systemClipboard struct{}

// SystemClipboard returns the OS clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// ClipboardCleaner copies values to a clipboard and clears them after ttl,
// but only while the clipboard still holds the copied value. A newer copy
// restarts the countdown. A ttl of zero or less disables clearing.
type ClipboardCleaner struct {
	board Clipboard
	ttl   time.Duration

	mu     sync.Mutex
	copied chan string

	logger *logger.Logger
}

func NewClipboardCleaner(board Clipboard, ttl time.Duration, logger *logger.Logger) *ClipboardCleaner {
	return &ClipboardCleaner{
		board:  board,
		ttl:    ttl,
		copied: make(chan string, 1),
		logger: logger,
	}
}

// TTL is how long a copied value survives.
func (c *ClipboardCleaner) TTL() time.Duration {
	return c.ttl
}

// Copy writes value to the clipboard and schedules its removal.
func (c *ClipboardCleaner) Copy(value string) error {
	if err := c.board.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	if c.ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.copied:
	default:
	}
	c.copied <- value

	return nil
}

// Run clears pending values when their ttl passes and once more when ctx is
// done, so a secret does not outlive the client.
func (c *ClipboardCleaner) Run(ctx context.Context) {
	var (
		pending string
		timer   *time.Timer
		expired <-chan time.Time
	)
	stop := func() {
		if timer != nil {
			timer.Stop()
		}
		expired = nil
	}

	for {
		select {
		case <-ctx.Done():
			stop()
			if pending != "" {
				c.clearIf(pending)
			}
			return
		case value := <-c.copied:
			stop()
			pending = value
			timer = time.NewTimer(c.ttl)
			expired = timer.C
		case <-expired:
			c.clearIf(pending)
			pending = ""
			expired = nil
		}
	}
}

func (c *ClipboardCleaner) clearIf(value string) {
	current, err := c.board.ReadAll()
	if err != nil {
		c.logger.Err(err).Str("func", "*ClipboardCleaner.clearIf").Msg("cannot read clipboard")
		return
	}
	if current != value {
		c.logger.Debug().Msg("clipboard changed since copy, leaving it alone")
		return
	}
	if err = c.board.WriteAll(""); err != nil {
		c.logger.Err(err).Str("func", "*ClipboardCleaner.clearIf").Msg("cannot clear clipboard")
		return
	}
	c.logger.Debug().Msg("clipboard cleared")
}
