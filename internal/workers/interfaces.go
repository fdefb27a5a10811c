// Package workers runs the client's background jobs.
//
// It defines the Worker interface, a Workers aggregate that runs several
// workers under one context, and the clipboard cleaner that wipes copied
// secrets after a delay.
package workers

import "context"

// Worker is a background job that runs until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Clipboard is the system clipboard as seen by the cleaner.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}
