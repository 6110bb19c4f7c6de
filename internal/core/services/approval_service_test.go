package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	"github.com/orghub/org_management_app/internal/core/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ApprovalRepository ---
type MockApprovalRepository struct {
	mock.Mock
}

func (m *MockApprovalRepository) FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	args := m.Called(ctx, approvalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

func (m *MockApprovalRepository) FindLatestApproval(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.Approval, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

func (m *MockApprovalRepository) ListApprovals(ctx context.Context, filter portsrepo.ApprovalFilter) ([]domain.Approval, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Approval), args.Get(1).(int64), args.Error(2)
}

func (m *MockApprovalRepository) CountPendingByEntityType(ctx context.Context) ([]domain.ApprovalSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalSummary), args.Error(1)
}

func (m *MockApprovalRepository) SubmitWithApproval(ctx context.Context, approval domain.Approval) error {
	args := m.Called(ctx, approval)
	return args.Error(0)
}

func (m *MockApprovalRepository) ResolveApproval(ctx context.Context, approval domain.Approval, entityStatus domain.Status, resolvedBy string, now time.Time) error {
	args := m.Called(ctx, approval, entityStatus, resolvedBy, now)
	return args.Error(0)
}

// --- Test Suite ---
type ApprovalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockApprovalRepository
	service  *services.ApprovalService
	admin    domain.Actor
	member   domain.Actor
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockApprovalRepository)
	suite.service = services.NewApprovalService(suite.mockRepo)
	suite.admin = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.member = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleMember}
}

func (suite *ApprovalServiceTestSuite) pendingApproval(requester string) *domain.Approval {
	return &domain.Approval{
		ApprovalID: uuid.NewString(),
		EntityType: domain.EntityFinance,
		EntityID:   uuid.NewString(),
		UserID:     requester,
		Status:     domain.ApprovalPending,
		CreatedAt:  time.Now().Add(-time.Hour),
	}
}

func (suite *ApprovalServiceTestSuite) TestSubmit_Success() {
	ctx := context.Background()
	entityID := uuid.NewString()

	suite.mockRepo.On("FindLatestApproval", ctx, domain.EntityFinance, entityID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SubmitWithApproval", ctx, mock.MatchedBy(func(a domain.Approval) bool {
		return a.EntityType == domain.EntityFinance &&
			a.EntityID == entityID &&
			a.UserID == suite.member.UserID &&
			a.Status == domain.ApprovalPending
	})).Return(nil).Once()

	approval, err := suite.service.Submit(ctx, domain.EntityFinance, entityID, suite.member)

	suite.Require().NoError(err)
	suite.Require().NotNil(approval)
	suite.Equal(domain.ApprovalPending, approval.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestSubmit_ResubmitAfterRevision() {
	ctx := context.Background()
	entityID := uuid.NewString()
	previous := suite.pendingApproval(suite.member.UserID)
	previous.Status = domain.ApprovalRevision

	suite.mockRepo.On("FindLatestApproval", ctx, domain.EntityFinance, entityID).
		Return(previous, nil).Once()
	suite.mockRepo.On("SubmitWithApproval", ctx, mock.AnythingOfType("domain.Approval")).Return(nil).Once()

	approval, err := suite.service.Submit(ctx, domain.EntityFinance, entityID, suite.member)

	suite.Require().NoError(err)
	suite.NotEqual(previous.ApprovalID, approval.ApprovalID)
}

func (suite *ApprovalServiceTestSuite) TestSubmit_AlreadyPendingConflicts() {
	ctx := context.Background()
	entityID := uuid.NewString()

	suite.mockRepo.On("FindLatestApproval", ctx, domain.EntityFinance, entityID).
		Return(suite.pendingApproval(suite.member.UserID), nil).Once()

	_, err := suite.service.Submit(ctx, domain.EntityFinance, entityID, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "SubmitWithApproval")
}

func (suite *ApprovalServiceTestSuite) TestSubmit_RejectsNonApprovableType() {
	_, err := suite.service.Submit(context.Background(), domain.EntityGallery, uuid.NewString(), suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ApprovalServiceTestSuite) TestResolveApproval_ApproveSuccess() {
	ctx := context.Background()
	approval := suite.pendingApproval(suite.member.UserID)

	suite.mockRepo.On("FindApprovalByID", ctx, approval.ApprovalID).Return(approval, nil).Once()
	suite.mockRepo.On("ResolveApproval", ctx, mock.MatchedBy(func(a domain.Approval) bool {
		return a.Status == domain.ApprovalApproved && a.Note == "looks good"
	}), domain.StatusApproved, suite.admin.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	resolved, err := suite.service.ResolveApproval(ctx, approval.ApprovalID,
		dto.ResolveApprovalRequest{Status: "APPROVED", Note: "looks good"}, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalApproved, resolved.Status)
	suite.Equal(suite.admin.UserID, resolved.ResolvedBy)
	suite.NotNil(resolved.ResolvedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestResolveApproval_RevisionMovesEntityToRevision() {
	ctx := context.Background()
	approval := suite.pendingApproval(suite.member.UserID)

	suite.mockRepo.On("FindApprovalByID", ctx, approval.ApprovalID).Return(approval, nil).Once()
	suite.mockRepo.On("ResolveApproval", ctx, mock.AnythingOfType("domain.Approval"),
		domain.StatusRevision, suite.admin.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	resolved, err := suite.service.ResolveApproval(ctx, approval.ApprovalID,
		dto.ResolveApprovalRequest{Status: "REVISION", Note: "missing receipt"}, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalRevision, resolved.Status)
}

func (suite *ApprovalServiceTestSuite) TestResolveApproval_CancelReturnsEntityToDraft() {
	ctx := context.Background()
	approval := suite.pendingApproval(suite.member.UserID)

	suite.mockRepo.On("FindApprovalByID", ctx, approval.ApprovalID).Return(approval, nil).Once()
	suite.mockRepo.On("ResolveApproval", ctx, mock.AnythingOfType("domain.Approval"),
		domain.StatusDraft, suite.member.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	resolved, err := suite.service.ResolveApproval(ctx, approval.ApprovalID,
		dto.ResolveApprovalRequest{Status: "CANCELLED"}, suite.member)

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalCancelled, resolved.Status)
}

func (suite *ApprovalServiceTestSuite) TestResolveApproval_MemberCannotApprove() {
	ctx := context.Background()
	approval := suite.pendingApproval(suite.member.UserID)

	suite.mockRepo.On("FindApprovalByID", ctx, approval.ApprovalID).Return(approval, nil).Once()

	_, err := suite.service.ResolveApproval(ctx, approval.ApprovalID,
		dto.ResolveApprovalRequest{Status: "APPROVED"}, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ResolveApproval")
}

func (suite *ApprovalServiceTestSuite) TestResolveApproval_StrangerCannotCancel() {
	ctx := context.Background()
	approval := suite.pendingApproval(uuid.NewString())

	suite.mockRepo.On("FindApprovalByID", ctx, approval.ApprovalID).Return(approval, nil).Once()

	_, err := suite.service.ResolveApproval(ctx, approval.ApprovalID,
		dto.ResolveApprovalRequest{Status: "CANCELLED"}, suite.member)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ApprovalServiceTestSuite) TestResolveApproval_AlreadyResolvedConflicts() {
	ctx := context.Background()
	approval := suite.pendingApproval(suite.member.UserID)
	approval.Status = domain.ApprovalApproved

	suite.mockRepo.On("FindApprovalByID", ctx, approval.ApprovalID).Return(approval, nil).Once()

	_, err := suite.service.ResolveApproval(ctx, approval.ApprovalID,
		dto.ResolveApprovalRequest{Status: "REJECTED"}, suite.admin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ApprovalServiceTestSuite) TestListApprovals_PassesLatestOnlyFilter() {
	ctx := context.Background()
	params := dto.ListApprovalsParams{
		PageParams: dto.PageParams{Page: 2, Limit: 10},
		Status:     "PENDING",
		LatestOnly: true,
	}

	suite.mockRepo.On("ListApprovals", ctx, portsrepo.ApprovalFilter{
		Status:     "PENDING",
		LatestOnly: true,
		Limit:      10,
		Offset:     10,
	}).Return([]domain.Approval{*suite.pendingApproval(suite.member.UserID)}, int64(11), nil).Once()

	resp, err := suite.service.ListApprovals(ctx, params)

	suite.Require().NoError(err)
	suite.Len(resp.Approvals, 1)
	suite.Equal(int64(11), resp.Pagination.Total)
	suite.Equal(2, resp.Pagination.Pages)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestSummary_EmptyWhenNoPending() {
	ctx := context.Background()
	suite.mockRepo.On("CountPendingByEntityType", ctx).Return(nil, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.NotNil(summary)
	suite.Empty(summary)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
