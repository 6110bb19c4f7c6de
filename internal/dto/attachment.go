package dto

// AttachmentResponse returns the stable reference for an uploaded file.
// FileID is what entity records store; the URLs are derived.
type AttachmentResponse struct {
	FileID      string `json:"fileID"`
	Name        string `json:"name"`
	ViewURL     string `json:"viewURL"`
	DownloadURL string `json:"downloadURL"`
}

// FolderResponse describes one configured destination folder.
type FolderResponse struct {
	EntityType string `json:"entityType"`
	FolderID   string `json:"folderID"`
}

// ListFoldersResponse wraps the configured folders per entity type.
type ListFoldersResponse struct {
	Folders []FolderResponse `json:"folders"`
}
