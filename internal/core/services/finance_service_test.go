package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/core/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FinanceRepository ---
type MockFinanceRepository struct {
	mock.Mock
}

func (m *MockFinanceRepository) FindFinanceByID(ctx context.Context, financeID string) (*domain.Finance, error) {
	args := m.Called(ctx, financeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Finance), args.Error(1)
}

func (m *MockFinanceRepository) ListFinances(ctx context.Context, filter portsrepo.FinanceFilter) ([]domain.Finance, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Finance), args.Get(1).(int64), args.Error(2)
}

func (m *MockFinanceRepository) SaveFinance(ctx context.Context, finance domain.Finance) error {
	args := m.Called(ctx, finance)
	return args.Error(0)
}

func (m *MockFinanceRepository) UpdateFinance(ctx context.Context, finance domain.Finance) error {
	args := m.Called(ctx, finance)
	return args.Error(0)
}

func (m *MockFinanceRepository) DeleteFinance(ctx context.Context, financeID string) error {
	args := m.Called(ctx, financeID)
	return args.Error(0)
}

func (m *MockFinanceRepository) DeleteFinances(ctx context.Context, financeIDs []string) error {
	args := m.Called(ctx, financeIDs)
	return args.Error(0)
}

// --- Mock AttachmentService ---
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Attach(ctx context.Context, upload portssvc.AttachmentUpload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentService) Replace(ctx context.Context, oldRef string, upload portssvc.AttachmentUpload) (string, error) {
	args := m.Called(ctx, oldRef, upload)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentService) Remove(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockAttachmentService) Folders() []dto.FolderResponse {
	args := m.Called()
	return args.Get(0).([]dto.FolderResponse)
}

// --- Mock ApprovalSubmitter ---
type MockApprovalSubmitter struct {
	mock.Mock
}

func (m *MockApprovalSubmitter) Submit(ctx context.Context, entityType domain.EntityType, entityID string, actor domain.Actor) (*domain.Approval, error) {
	args := m.Called(ctx, entityType, entityID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

// --- Test Suite ---
type FinanceServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockFinanceRepository
	mockAttachments *MockAttachmentService
	mockSubmitter   *MockApprovalSubmitter
	service         portssvc.FinanceSvcFacade
	admin           domain.Actor
	member          domain.Actor
}

func (suite *FinanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFinanceRepository)
	suite.mockAttachments = new(MockAttachmentService)
	suite.mockSubmitter = new(MockApprovalSubmitter)
	suite.service = services.NewFinanceService(suite.mockRepo, suite.mockAttachments, suite.mockSubmitter)
	suite.admin = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.member = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleMember}
}

func (suite *FinanceServiceTestSuite) draftFinance(createdBy string) *domain.Finance {
	return &domain.Finance{
		FinanceID: uuid.NewString(),
		Title:     "Venue rental",
		Type:      domain.FinanceExpense,
		Amount:    decimal.NewFromInt(250),
		Date:      time.Now(),
		Status:    domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedBy: createdBy,
		},
	}
}

func (suite *FinanceServiceTestSuite) TestCreateFinance_Success() {
	ctx := context.Background()
	req := dto.CreateFinanceRequest{
		Title:  "Sponsorship",
		Type:   "INCOME",
		Amount: decimal.NewFromInt(1000),
		Date:   time.Now(),
	}

	suite.mockRepo.On("SaveFinance", ctx, mock.MatchedBy(func(f domain.Finance) bool {
		return f.Title == req.Title &&
			f.Type == domain.FinanceIncome &&
			f.Status == domain.StatusDraft &&
			f.CreatedBy == suite.member.UserID
	})).Return(nil).Once()

	finance, err := suite.service.CreateFinance(ctx, req, suite.member)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, finance.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestCreateFinance_RejectsNonPositiveAmount() {
	req := dto.CreateFinanceRequest{
		Title:  "Zero",
		Type:   "EXPENSE",
		Amount: decimal.Zero,
		Date:   time.Now(),
	}

	_, err := suite.service.CreateFinance(context.Background(), req, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFinance")
}

func (suite *FinanceServiceTestSuite) TestCreateFinance_NormalizesProofURL() {
	ctx := context.Background()
	url := "https://drive.google.com/file/d/proof1234567/view"
	req := dto.CreateFinanceRequest{
		Title:       "With proof",
		Type:        "EXPENSE",
		Amount:      decimal.NewFromInt(10),
		Date:        time.Now(),
		ProofFileID: &url,
	}

	suite.mockRepo.On("SaveFinance", ctx, mock.MatchedBy(func(f domain.Finance) bool {
		return f.ProofFileID == "proof1234567"
	})).Return(nil).Once()

	_, err := suite.service.CreateFinance(ctx, req, suite.member)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestUpdateFinance_PendingIsLocked() {
	ctx := context.Background()
	finance := suite.draftFinance(suite.member.UserID)
	finance.Status = domain.StatusPending
	title := "New title"

	suite.mockRepo.On("FindFinanceByID", ctx, finance.FinanceID).Return(finance, nil).Once()

	_, err := suite.service.UpdateFinance(ctx, finance.FinanceID, dto.UpdateFinanceRequest{Title: &title}, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateFinance")
}

func (suite *FinanceServiceTestSuite) TestUpdateFinance_ApprovedNeedsAdmin() {
	ctx := context.Background()
	finance := suite.draftFinance(suite.member.UserID)
	finance.Status = domain.StatusApproved
	title := "New title"

	suite.mockRepo.On("FindFinanceByID", ctx, finance.FinanceID).Return(finance, nil).Once()

	_, err := suite.service.UpdateFinance(ctx, finance.FinanceID, dto.UpdateFinanceRequest{Title: &title}, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *FinanceServiceTestSuite) TestUpdateFinance_ReplacingProofRemovesOldFile() {
	ctx := context.Background()
	finance := suite.draftFinance(suite.member.UserID)
	finance.ProofFileID = "old-proof-1234"
	newProof := "new-proof-5678"

	suite.mockRepo.On("FindFinanceByID", ctx, finance.FinanceID).Return(finance, nil).Once()
	suite.mockRepo.On("UpdateFinance", ctx, mock.MatchedBy(func(f domain.Finance) bool {
		return f.ProofFileID == newProof
	})).Return(nil).Once()
	suite.mockAttachments.On("Remove", ctx, "old-proof-1234").Return(nil).Once()

	_, err := suite.service.UpdateFinance(ctx, finance.FinanceID, dto.UpdateFinanceRequest{ProofFileID: &newProof}, suite.member)

	suite.Require().NoError(err)
	suite.mockAttachments.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestDeleteFinance_OnlyCreatorOrAdmin() {
	ctx := context.Background()
	finance := suite.draftFinance(uuid.NewString())

	suite.mockRepo.On("FindFinanceByID", ctx, finance.FinanceID).Return(finance, nil).Once()

	err := suite.service.DeleteFinance(ctx, finance.FinanceID, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteFinance")
}

func (suite *FinanceServiceTestSuite) TestDeleteFinance_RemovesProofFile() {
	ctx := context.Background()
	finance := suite.draftFinance(suite.member.UserID)
	finance.ProofFileID = "proof-to-clean"

	suite.mockRepo.On("FindFinanceByID", ctx, finance.FinanceID).Return(finance, nil).Once()
	suite.mockRepo.On("DeleteFinance", ctx, finance.FinanceID).Return(nil).Once()
	suite.mockAttachments.On("Remove", ctx, "proof-to-clean").Return(nil).Once()

	err := suite.service.DeleteFinance(ctx, finance.FinanceID, suite.member)

	suite.Require().NoError(err)
	suite.mockAttachments.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestBulkDeleteFinances_RequiresAdmin() {
	err := suite.service.BulkDeleteFinances(context.Background(), []string{uuid.NewString()}, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteFinances")
}

func (suite *FinanceServiceTestSuite) TestBulkDeleteFinances_AdminSuccess() {
	ctx := context.Background()
	ids := []string{uuid.NewString(), uuid.NewString()}

	suite.mockRepo.On("DeleteFinances", ctx, ids).Return(nil).Once()

	err := suite.service.BulkDeleteFinances(ctx, ids, suite.admin)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestSubmitForApproval_DelegatesToSubmitter() {
	ctx := context.Background()
	finance := suite.draftFinance(suite.member.UserID)
	expected := &domain.Approval{ApprovalID: uuid.NewString(), Status: domain.ApprovalPending}

	suite.mockRepo.On("FindFinanceByID", ctx, finance.FinanceID).Return(finance, nil).Once()
	suite.mockSubmitter.On("Submit", ctx, domain.EntityFinance, finance.FinanceID, suite.member).
		Return(expected, nil).Once()

	approval, err := suite.service.SubmitFinanceForApproval(ctx, finance.FinanceID, suite.member)

	suite.Require().NoError(err)
	suite.Equal(expected.ApprovalID, approval.ApprovalID)
	suite.mockSubmitter.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestSubmitForApproval_ApprovedCannotResubmit() {
	ctx := context.Background()
	finance := suite.draftFinance(suite.member.UserID)
	finance.Status = domain.StatusApproved

	suite.mockRepo.On("FindFinanceByID", ctx, finance.FinanceID).Return(finance, nil).Once()

	_, err := suite.service.SubmitFinanceForApproval(ctx, finance.FinanceID, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockSubmitter.AssertNotCalled(suite.T(), "Submit")
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
