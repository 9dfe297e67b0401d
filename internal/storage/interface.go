package storage

import (
	"context"
	"time"
)

// StorageClient abstracts where exported snapshots live. Both
// implementations lay files out under the same dated folder scheme,
// so a snapshot's path is identical locally and in GCS.
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores one snapshot file under the dashboard's dated folder
	StoreFile(ctx context.Context, fileData []byte, dashboard, filename string, timestamp time.Time) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListSnapshots lists snapshot index pages, newest first
	ListSnapshots(ctx context.Context, limit int) ([]string, error)
}
