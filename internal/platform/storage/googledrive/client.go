// Package googledrive implements the external file store on the Google Drive
// v3 API. Entity records keep only the opaque file id returned by Upload;
// share URLs are derived from it at read time.
package googledrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/orghub/org_management_app/internal/apperrors"
	portstorage "github.com/orghub/org_management_app/internal/core/ports/storage"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Drive service with the four operations the attachment
// lifecycle needs.
type Client struct {
	svc    *drive.Service
	logger *slog.Logger
}

var _ portstorage.FileStore = (*Client)(nil)

// NewClient builds a Drive client authenticated with a service account
// credentials file.
func NewClient(ctx context.Context, credentialsFile string, logger *slog.Logger) (*Client, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{svc: svc, logger: logger}, nil
}

// NewClientWithService wraps an already-constructed Drive service. Used by
// tests to point the client at a local HTTP server.
func NewClientWithService(svc *drive.Service, logger *slog.Logger) *Client {
	return &Client{svc: svc, logger: logger}
}

// Upload streams content into folderID under name and returns the new file id.
func (c *Client) Upload(ctx context.Context, content io.Reader, name string, folderID string) (string, error) {
	meta := &drive.File{Name: name}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}
	created, err := c.svc.Files.Create(meta).Media(content).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: upload %q failed: %v", apperrors.ErrStorage, name, err)
	}
	return created.Id, nil
}

// Rename changes the stored file's display name.
func (c *Client) Rename(ctx context.Context, fileID string, newName string) error {
	_, err := c.svc.Files.Update(fileID, &drive.File{Name: newName}).Fields("id", "name").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: rename %s failed: %v", apperrors.ErrStorage, fileID, err)
	}
	return nil
}

// SetPublicAccess grants anyone-with-the-link read access so the file can be
// rendered by unauthenticated clients.
func (c *Client) SetPublicAccess(ctx context.Context, fileID string) error {
	perm := &drive.Permission{Type: "anyone", Role: "reader"}
	_, err := c.svc.Permissions.Create(fileID, perm).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: set public access on %s failed: %v", apperrors.ErrStorage, fileID, err)
	}
	return nil
}

// Delete removes the file. A 404 means the file is already gone and is
// treated as success.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	err := c.svc.Files.Delete(fileID).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			c.logger.Debug("File already deleted from storage", slog.String("file_id", fileID))
			return nil
		}
		return fmt.Errorf("%w: delete %s failed: %v", apperrors.ErrStorage, fileID, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
