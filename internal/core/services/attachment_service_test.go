package services_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, content io.Reader, name string, folderID string) (string, error) {
	args := m.Called(ctx, content, name, folderID)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Rename(ctx context.Context, fileID string, newName string) error {
	args := m.Called(ctx, fileID, newName)
	return args.Error(0)
}

func (m *MockFileStore) SetPublicAccess(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockFileStore) Delete(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

// --- Test Suite ---
type AttachmentServiceTestSuite struct {
	suite.Suite
	mockStore *MockFileStore
	service   portssvc.AttachmentSvcFacade
}

func (suite *AttachmentServiceTestSuite) SetupTest() {
	suite.mockStore = new(MockFileStore)
	suite.service = services.NewAttachmentService(suite.mockStore, map[string]string{
		"FINANCE": "folder-finance",
		"GALLERY": "folder-gallery",
	})
}

func (suite *AttachmentServiceTestSuite) upload() portssvc.AttachmentUpload {
	return portssvc.AttachmentUpload{
		Content:     strings.NewReader("pdf bytes"),
		Filename:    "Receipt Q3.pdf",
		Size:        1024,
		DisplayName: "Receipt Q3",
		EntityType:  domain.EntityFinance,
	}
}

func (suite *AttachmentServiceTestSuite) TestAttach_Success() {
	ctx := context.Background()

	suite.mockStore.On("Upload", ctx, mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "tmp-") && strings.HasSuffix(name, ".pdf")
	}), "folder-finance").Return("file-123", nil).Once()
	suite.mockStore.On("Rename", ctx, "file-123", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "receipt-q3-") && strings.HasSuffix(name, ".pdf")
	})).Return(nil).Once()
	suite.mockStore.On("SetPublicAccess", ctx, "file-123").Return(nil).Once()

	fileID, err := suite.service.Attach(ctx, suite.upload())

	suite.Require().NoError(err)
	suite.Equal("file-123", fileID)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestAttach_RenameFailureCompensates() {
	ctx := context.Background()

	suite.mockStore.On("Upload", ctx, mock.Anything, mock.Anything, "folder-finance").Return("file-123", nil).Once()
	suite.mockStore.On("Rename", ctx, "file-123", mock.Anything).Return(assert.AnError).Once()
	suite.mockStore.On("Delete", ctx, "file-123").Return(nil).Once()

	fileID, err := suite.service.Attach(ctx, suite.upload())

	suite.Require().Error(err)
	suite.Empty(fileID)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestAttach_PublicAccessFailureCompensates() {
	ctx := context.Background()

	suite.mockStore.On("Upload", ctx, mock.Anything, mock.Anything, "folder-finance").Return("file-123", nil).Once()
	suite.mockStore.On("Rename", ctx, "file-123", mock.Anything).Return(nil).Once()
	suite.mockStore.On("SetPublicAccess", ctx, "file-123").Return(assert.AnError).Once()
	suite.mockStore.On("Delete", ctx, "file-123").Return(nil).Once()

	_, err := suite.service.Attach(ctx, suite.upload())

	suite.Require().Error(err)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestAttach_RejectsOversizedFile() {
	ctx := context.Background()
	upload := suite.upload()
	upload.EntityType = domain.EntityGallery
	upload.Filename = "huge.png"
	upload.Size = 6 << 20 // over the 5MB image limit

	_, err := suite.service.Attach(ctx, upload)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStore.AssertNotCalled(suite.T(), "Upload")
}

func (suite *AttachmentServiceTestSuite) TestAttach_RejectsWrongExtension() {
	ctx := context.Background()
	upload := suite.upload()
	upload.EntityType = domain.EntityGallery
	upload.Filename = "photo.pdf"

	_, err := suite.service.Attach(ctx, upload)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AttachmentServiceTestSuite) TestAttach_MissingFolderConfig() {
	ctx := context.Background()
	upload := suite.upload()
	upload.EntityType = domain.EntityLetter
	upload.Filename = "letter.pdf"

	_, err := suite.service.Attach(ctx, upload)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *AttachmentServiceTestSuite) TestReplace_RemovesOldFile() {
	ctx := context.Background()

	suite.mockStore.On("Upload", ctx, mock.Anything, mock.Anything, "folder-finance").Return("file-new", nil).Once()
	suite.mockStore.On("Rename", ctx, "file-new", mock.Anything).Return(nil).Once()
	suite.mockStore.On("SetPublicAccess", ctx, "file-new").Return(nil).Once()
	suite.mockStore.On("Delete", ctx, "file-old-12345").Return(nil).Once()

	fileID, err := suite.service.Replace(ctx, "file-old-12345", suite.upload())

	suite.Require().NoError(err)
	suite.Equal("file-new", fileID)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestReplace_OldDeleteFailureIsSwallowed() {
	ctx := context.Background()

	suite.mockStore.On("Upload", ctx, mock.Anything, mock.Anything, "folder-finance").Return("file-new", nil).Once()
	suite.mockStore.On("Rename", ctx, "file-new", mock.Anything).Return(nil).Once()
	suite.mockStore.On("SetPublicAccess", ctx, "file-new").Return(nil).Once()
	suite.mockStore.On("Delete", ctx, "file-old-12345").Return(assert.AnError).Once()

	fileID, err := suite.service.Replace(ctx, "file-old-12345", suite.upload())

	suite.Require().NoError(err)
	suite.Equal("file-new", fileID)
}

func (suite *AttachmentServiceTestSuite) TestRemove_EmptyRefIsNoop() {
	err := suite.service.Remove(context.Background(), "")
	suite.Require().NoError(err)
	suite.mockStore.AssertNotCalled(suite.T(), "Delete")
}

func (suite *AttachmentServiceTestSuite) TestRemove_AcceptsShareURL() {
	ctx := context.Background()
	suite.mockStore.On("Delete", ctx, "abc123def456").Return(nil).Once()

	err := suite.service.Remove(ctx, "https://drive.google.com/file/d/abc123def456/view")

	suite.Require().NoError(err)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestFolders_SortedByEntityType() {
	folders := suite.service.Folders()

	suite.Require().Len(folders, 2)
	suite.Equal("FINANCE", folders[0].EntityType)
	suite.Equal("GALLERY", folders[1].EntityType)
}

func TestAttachmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}
