package domain_test

import (
	"strings"
	"testing"

	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttachmentRef_BareID(t *testing.T) {
	ref, err := domain.ParseAttachmentRef("1aBcDeFgHiJkLmNoPqRsTuV")
	require.NoError(t, err)
	assert.Equal(t, domain.AttachmentRefFileID, ref.Kind)
	assert.Equal(t, "1aBcDeFgHiJkLmNoPqRsTuV", ref.FileID)
}

func TestParseAttachmentRef_ShareURL(t *testing.T) {
	cases := []string{
		"https://drive.google.com/file/d/1aBcDeFgHiJkLmNoPqRsTuV/view?usp=sharing",
		"https://drive.google.com/open?id=1aBcDeFgHiJkLmNoPqRsTuV",
		"https://drive.google.com/uc?id=1aBcDeFgHiJkLmNoPqRsTuV",
	}
	for _, raw := range cases {
		ref, err := domain.ParseAttachmentRef(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, domain.AttachmentRefFileURL, ref.Kind, raw)
		assert.Equal(t, "1aBcDeFgHiJkLmNoPqRsTuV", ref.FileID, raw)
	}
}

func TestParseAttachmentRef_Empty(t *testing.T) {
	ref, err := domain.ParseAttachmentRef("   ")
	require.NoError(t, err)
	assert.True(t, ref.IsEmpty())
	assert.Empty(t, ref.ViewURL())
}

func TestParseAttachmentRef_Garbage(t *testing.T) {
	_, err := domain.ParseAttachmentRef("not a reference")
	assert.Error(t, err)
}

func TestAttachmentRef_URLs(t *testing.T) {
	ref, err := domain.ParseAttachmentRef("1aBcDeFgHiJkLmNoPqRsTuV")
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/file/d/1aBcDeFgHiJkLmNoPqRsTuV/view", ref.ViewURL())
	assert.Equal(t, "https://drive.google.com/uc?id=1aBcDeFgHiJkLmNoPqRsTuV", ref.DownloadURL())
}

func TestAttachmentKind_ValidateFile_SizeLimit(t *testing.T) {
	// 6MB image against the 5MB limit
	err := domain.AttachmentImage.ValidateFile("photo.jpg", 6<<20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")

	assert.NoError(t, domain.AttachmentImage.ValidateFile("photo.jpg", 4<<20))
	assert.NoError(t, domain.AttachmentDocument.ValidateFile("report.pdf", 9<<20))
	assert.Error(t, domain.AttachmentDocument.ValidateFile("report.pdf", 11<<20))
}

func TestAttachmentKind_ValidateFile_Extensions(t *testing.T) {
	assert.Error(t, domain.AttachmentImage.ValidateFile("script.exe", 100))
	assert.Error(t, domain.AttachmentDocument.ValidateFile("archive.zip", 100))
	assert.NoError(t, domain.AttachmentImage.ValidateFile("Photo.PNG", 100))
	assert.NoError(t, domain.AttachmentDocument.ValidateFile("minutes.docx", 100))
}

func TestAttachmentKindFor(t *testing.T) {
	kind, err := domain.AttachmentKindFor(domain.EntityFinance)
	require.NoError(t, err)
	assert.Equal(t, domain.AttachmentDocument, kind)

	kind, err = domain.AttachmentKindFor(domain.EntityGallery)
	require.NoError(t, err)
	assert.Equal(t, domain.AttachmentImage, kind)

	_, err = domain.AttachmentKindFor(domain.EntityType("BOGUS"))
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "BOGUS"))
}
