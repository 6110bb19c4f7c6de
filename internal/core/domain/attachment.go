package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// AttachmentRefKind discriminates the shape of a stored attachment reference.
// Historically references were stored either as a bare storage file id or as a
// full share URL embedding that id; ParseAttachmentRef is the single place that
// distinguishes the two.
type AttachmentRefKind int

const (
	AttachmentRefEmpty AttachmentRefKind = iota
	AttachmentRefFileID
	AttachmentRefFileURL
)

// AttachmentRef is the parsed form of an attachment reference.
type AttachmentRef struct {
	Kind   AttachmentRefKind
	FileID string // extracted id, empty when Kind == AttachmentRefEmpty
	Raw    string // the original stored string
}

var (
	driveURLPattern = regexp.MustCompile(`https?://drive\.google\.com/(?:file/d/|open\?id=|uc\?id=)([a-zA-Z0-9_-]+)`)
	bareIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)
)

// ParseAttachmentRef resolves a stored reference string into its tagged form.
// It accepts a bare file id, a drive share URL, or an empty string.
func ParseAttachmentRef(raw string) (AttachmentRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AttachmentRef{Kind: AttachmentRefEmpty}, nil
	}
	if m := driveURLPattern.FindStringSubmatch(raw); m != nil {
		return AttachmentRef{Kind: AttachmentRefFileURL, FileID: m[1], Raw: raw}, nil
	}
	if bareIDPattern.MatchString(raw) {
		return AttachmentRef{Kind: AttachmentRefFileID, FileID: raw, Raw: raw}, nil
	}
	return AttachmentRef{}, fmt.Errorf("unrecognized attachment reference %q", raw)
}

// IsEmpty reports whether the reference points at nothing.
func (r AttachmentRef) IsEmpty() bool {
	return r.Kind == AttachmentRefEmpty
}

// ViewURL returns a browser-viewable URL for the referenced file.
func (r AttachmentRef) ViewURL() string {
	if r.FileID == "" {
		return ""
	}
	return "https://drive.google.com/file/d/" + r.FileID + "/view"
}

// DownloadURL returns a direct-download URL for the referenced file.
func (r AttachmentRef) DownloadURL() string {
	if r.FileID == "" {
		return ""
	}
	return "https://drive.google.com/uc?id=" + r.FileID
}

// AttachmentKind groups entities by the class of file they accept, which
// determines the size limit and extension allow-list enforced before upload.
type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "IMAGE"
	AttachmentDocument AttachmentKind = "DOCUMENT"
)

const (
	maxImageSize    = 5 << 20  // 5MB
	maxDocumentSize = 10 << 20 // 10MB
)

var allowedExtensions = map[AttachmentKind][]string{
	AttachmentImage:    {".jpg", ".jpeg", ".png", ".webp"},
	AttachmentDocument: {".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx"},
}

// attachmentKindByEntity maps each entity type to the class of file it carries.
var attachmentKindByEntity = map[EntityType]AttachmentKind{
	EntityFinance:    AttachmentDocument, // proof
	EntityLetter:     AttachmentDocument, // letter file
	EntityDocument:   AttachmentDocument, // document file
	EntityEvent:      AttachmentImage,    // thumbnail
	EntityGallery:    AttachmentImage,    // photo
	EntityArticle:    AttachmentImage,    // cover image
	EntityStructure:  AttachmentDocument, // decree
	EntityManagement: AttachmentImage,    // member photo
}

// AttachmentKindFor returns the file class accepted by the given entity type.
func AttachmentKindFor(entityType EntityType) (AttachmentKind, error) {
	kind, ok := attachmentKindByEntity[entityType]
	if !ok {
		return "", fmt.Errorf("entity type %s does not accept attachments", entityType)
	}
	return kind, nil
}

// MaxSize returns the maximum accepted file size in bytes for this kind.
func (k AttachmentKind) MaxSize() int64 {
	if k == AttachmentImage {
		return maxImageSize
	}
	return maxDocumentSize
}

// ValidateFile checks a candidate file's size and extension against the limits
// for this kind. The returned error wraps no sentinel; callers wrap it with
// apperrors.ErrValidation at the service boundary.
func (k AttachmentKind) ValidateFile(filename string, size int64) error {
	if size > k.MaxSize() {
		return fmt.Errorf("file size must be less than %dMB", k.MaxSize()>>20)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExtensions[k] {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("file type %q is not allowed, expected one of %s", ext, strings.Join(allowedExtensions[k], ", "))
}
