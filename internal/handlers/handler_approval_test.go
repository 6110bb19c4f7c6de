package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
	"github.com/orghub/org_management_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ApprovalService ---
type MockApprovalWorkflowService struct {
	mock.Mock
}

func (m *MockApprovalWorkflowService) ListApprovals(ctx context.Context, params dto.ListApprovalsParams) (*dto.ListApprovalsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListApprovalsResponse), args.Error(1)
}
func (m *MockApprovalWorkflowService) GetApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	args := m.Called(ctx, approvalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}
func (m *MockApprovalWorkflowService) ResolveApproval(ctx context.Context, approvalID string, req dto.ResolveApprovalRequest, actor domain.Actor) (*domain.Approval, error) {
	args := m.Called(ctx, approvalID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}
func (m *MockApprovalWorkflowService) Summary(ctx context.Context) ([]domain.ApprovalSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalSummary), args.Error(1)
}

var _ portssvc.ApprovalSvcFacade = (*MockApprovalWorkflowService)(nil)

// --- Test Suite ---
type ApprovalHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockApprovalService *MockApprovalWorkflowService
	jwtSecret           string
}

func (s *ApprovalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidations()
	s.jwtSecret = "test-secret-key-that-is-long-enough"
	s.router = gin.New()
	s.router.Use(middleware.AuthMiddleware(s.jwtSecret))

	s.mockApprovalService = new(MockApprovalWorkflowService)

	v1 := s.router.Group("/api/v1")
	registerApprovalRoutes(v1, s.mockApprovalService)
}

func (s *ApprovalHandlerTestSuite) authedRequest(method, url string, body any, userID string, role domain.UserRole) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, err := utils.GenerateJWT(userID, string(role), s.jwtSecret, time.Hour, "oma-test")
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ApprovalHandlerTestSuite) TestResolveApproval_AdminApproves() {
	approvalID := uuid.NewString()
	adminID := uuid.NewString()
	now := time.Now()
	resolved := &domain.Approval{
		ApprovalID: approvalID,
		EntityType: domain.EntityLetter,
		EntityID:   uuid.NewString(),
		Status:     domain.ApprovalApproved,
		ResolvedBy: adminID,
		ResolvedAt: &now,
		CreatedAt:  now.Add(-time.Hour),
	}

	s.mockApprovalService.On("ResolveApproval", mock.Anything, approvalID,
		dto.ResolveApprovalRequest{Status: "APPROVED", Note: "checked"},
		mock.MatchedBy(func(a domain.Actor) bool { return a.UserID == adminID && a.IsAdmin() }),
	).Return(resolved, nil).Once()

	w := s.authedRequest(http.MethodPut, "/api/v1/approvals/"+approvalID+"/resolve",
		dto.ResolveApprovalRequest{Status: "APPROVED", Note: "checked"}, adminID, domain.RoleAdmin)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ApprovalResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(domain.ApprovalApproved, resp.Status)
	s.Equal(adminID, resp.ResolvedBy)
	s.mockApprovalService.AssertExpectations(s.T())
}

func (s *ApprovalHandlerTestSuite) TestResolveApproval_InvalidStatus() {
	w := s.authedRequest(http.MethodPut, "/api/v1/approvals/"+uuid.NewString()+"/resolve",
		map[string]string{"status": "MAYBE"}, uuid.NewString(), domain.RoleAdmin)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockApprovalService.AssertNotCalled(s.T(), "ResolveApproval")
}

func (s *ApprovalHandlerTestSuite) TestResolveApproval_MemberForbidden() {
	approvalID := uuid.NewString()
	s.mockApprovalService.On("ResolveApproval", mock.Anything, approvalID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrForbidden).Once()

	w := s.authedRequest(http.MethodPut, "/api/v1/approvals/"+approvalID+"/resolve",
		dto.ResolveApprovalRequest{Status: "APPROVED"}, uuid.NewString(), domain.RoleMember)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *ApprovalHandlerTestSuite) TestResolveApproval_AlreadyResolved() {
	approvalID := uuid.NewString()
	s.mockApprovalService.On("ResolveApproval", mock.Anything, approvalID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	w := s.authedRequest(http.MethodPut, "/api/v1/approvals/"+approvalID+"/resolve",
		dto.ResolveApprovalRequest{Status: "REJECTED"}, uuid.NewString(), domain.RoleAdmin)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *ApprovalHandlerTestSuite) TestListApprovals_DefaultsToLatestOnly() {
	s.mockApprovalService.On("ListApprovals", mock.Anything,
		mock.MatchedBy(func(p dto.ListApprovalsParams) bool {
			return p.LatestOnly && p.Status == "PENDING"
		}),
	).Return(&dto.ListApprovalsResponse{
		Approvals:  []dto.ApprovalResponse{},
		Pagination: dto.NewPagination(1, 20, 0),
	}, nil).Once()

	w := s.authedRequest(http.MethodGet, "/api/v1/approvals?status=PENDING", nil, uuid.NewString(), domain.RoleAdmin)

	s.Equal(http.StatusOK, w.Code)
	s.mockApprovalService.AssertExpectations(s.T())
}

func (s *ApprovalHandlerTestSuite) TestSummary_Success() {
	s.mockApprovalService.On("Summary", mock.Anything).Return([]domain.ApprovalSummary{
		{EntityType: domain.EntityFinance, Pending: 3},
		{EntityType: domain.EntityLetter, Pending: 1},
	}, nil).Once()

	w := s.authedRequest(http.MethodGet, "/api/v1/approvals/summary", nil, uuid.NewString(), domain.RoleAdmin)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ApprovalSummaryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Summary, 2)
	s.Equal(int64(3), resp.Summary[0].Pending)
}

func TestApprovalHandler(t *testing.T) {
	suite.Run(t, new(ApprovalHandlerTestSuite))
}
