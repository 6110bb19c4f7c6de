package storage

import (
	"context"
	"io"
)

// FileStore abstracts the external file storage provider. The production
// implementation talks to Google Drive; tests substitute a mock.
type FileStore interface {
	// Upload streams content into the given folder under name and returns the
	// provider-assigned opaque file id.
	Upload(ctx context.Context, content io.Reader, name string, folderID string) (string, error)

	// Rename changes the stored file's display name.
	Rename(ctx context.Context, fileID string, newName string) error

	// SetPublicAccess makes the file readable by anyone with the link.
	SetPublicAccess(ctx context.Context, fileID string) error

	// Delete removes the file. Deleting a file that no longer exists is not
	// an error.
	Delete(ctx context.Context, fileID string) error
}
