package googledrive_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/orghub/org_management_app/internal/platform/storage/googledrive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// newTestClient points a Drive client at a local httptest server.
func newTestClient(t *testing.T, handler http.Handler) *googledrive.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := drive.NewService(context.Background(),
		option.WithHTTPClient(server.Client()),
		option.WithEndpoint(server.URL),
	)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return googledrive.NewClientWithService(svc, logger)
}

func TestClient_Upload(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "file-123"})
	}))

	id, err := client.Upload(context.Background(), strings.NewReader("content"), "upload-tmp.pdf", "folder-1")
	require.NoError(t, err)
	assert.Equal(t, "file-123", id)
	assert.Contains(t, gotPath, "/files")
}

func TestClient_Rename(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "file-123", "name": "final.pdf"})
	}))

	err := client.Rename(context.Background(), "file-123", "final.pdf")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Contains(t, gotPath, "file-123")
}

func TestClient_SetPublicAccess(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "perm-1"})
	}))

	err := client.SetPublicAccess(context.Background(), "file-123")
	require.NoError(t, err)
	assert.Equal(t, "anyone", gotBody["type"])
	assert.Equal(t, "reader", gotBody["role"])
}

func TestClient_Delete_Swallows404(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 404, "message": "File not found"},
		})
	}))

	// already-deleted file must not surface an error
	err := client.Delete(context.Background(), "gone-456")
	assert.NoError(t, err)
}

func TestClient_Delete_OtherErrorsPropagate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 403, "message": "insufficient permissions"},
		})
	}))

	err := client.Delete(context.Background(), "file-123")
	assert.Error(t, err)
}
