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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FinanceService ---
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) CreateFinance(ctx context.Context, req dto.CreateFinanceRequest, actor domain.Actor) (*domain.Finance, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Finance), args.Error(1)
}
func (m *MockFinanceService) GetFinanceByID(ctx context.Context, financeID string) (*domain.Finance, error) {
	args := m.Called(ctx, financeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Finance), args.Error(1)
}
func (m *MockFinanceService) ListFinances(ctx context.Context, params dto.ListFinancesParams) (*dto.ListFinancesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListFinancesResponse), args.Error(1)
}
func (m *MockFinanceService) UpdateFinance(ctx context.Context, financeID string, req dto.UpdateFinanceRequest, actor domain.Actor) (*domain.Finance, error) {
	args := m.Called(ctx, financeID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Finance), args.Error(1)
}
func (m *MockFinanceService) DeleteFinance(ctx context.Context, financeID string, actor domain.Actor) error {
	args := m.Called(ctx, financeID, actor)
	return args.Error(0)
}
func (m *MockFinanceService) BulkDeleteFinances(ctx context.Context, financeIDs []string, actor domain.Actor) error {
	args := m.Called(ctx, financeIDs, actor)
	return args.Error(0)
}
func (m *MockFinanceService) SubmitFinanceForApproval(ctx context.Context, financeID string, actor domain.Actor) (*domain.Approval, error) {
	args := m.Called(ctx, financeID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

var _ portssvc.FinanceSvcFacade = (*MockFinanceService)(nil)

// --- Test Suite ---
type FinanceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockFinanceService *MockFinanceService
	jwtSecret          string
}

func (s *FinanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwtSecret = "test-secret-key-that-is-long-enough"
	s.router = gin.New()
	s.router.Use(middleware.AuthMiddleware(s.jwtSecret))

	s.mockFinanceService = new(MockFinanceService)

	v1 := s.router.Group("/api/v1")
	registerFinanceRoutes(v1, s.mockFinanceService)
}

func (s *FinanceHandlerTestSuite) authedRequest(method, url string, body any, userID string, role domain.UserRole) *httptest.ResponseRecorder {
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

func (s *FinanceHandlerTestSuite) TestCreateFinance_Success() {
	userID := uuid.NewString()
	req := dto.CreateFinanceRequest{
		Title:  "Venue rental",
		Type:   string(domain.FinanceExpense),
		Amount: decimal.NewFromInt(250),
		Date:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	created := &domain.Finance{
		FinanceID: uuid.NewString(),
		Title:     req.Title,
		Type:      domain.FinanceExpense,
		Amount:    req.Amount,
		Date:      req.Date,
		Status:    domain.StatusDraft,
	}

	s.mockFinanceService.On("CreateFinance", mock.Anything,
		mock.MatchedBy(func(r dto.CreateFinanceRequest) bool { return r.Title == req.Title }),
		mock.MatchedBy(func(a domain.Actor) bool { return a.UserID == userID }),
	).Return(created, nil).Once()

	w := s.authedRequest(http.MethodPost, "/api/v1/finances", req, userID, domain.RoleMember)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.FinanceResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(created.FinanceID, resp.FinanceID)
	s.Equal(domain.StatusDraft, resp.Status)
	s.mockFinanceService.AssertExpectations(s.T())
}

func (s *FinanceHandlerTestSuite) TestCreateFinance_MissingTitle() {
	req := map[string]any{"type": "EXPENSE", "amount": "10", "date": "2025-04-01T00:00:00Z"}

	w := s.authedRequest(http.MethodPost, "/api/v1/finances", req, uuid.NewString(), domain.RoleMember)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockFinanceService.AssertNotCalled(s.T(), "CreateFinance")
}

func (s *FinanceHandlerTestSuite) TestCreateFinance_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/finances", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *FinanceHandlerTestSuite) TestGetFinance_NotFound() {
	financeID := uuid.NewString()
	s.mockFinanceService.On("GetFinanceByID", mock.Anything, financeID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := s.authedRequest(http.MethodGet, "/api/v1/finances/"+financeID, nil, uuid.NewString(), domain.RoleMember)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *FinanceHandlerTestSuite) TestUpdateFinance_PendingConflict() {
	financeID := uuid.NewString()
	title := "Adjusted"
	s.mockFinanceService.On("UpdateFinance", mock.Anything, financeID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	w := s.authedRequest(http.MethodPut, "/api/v1/finances/"+financeID,
		dto.UpdateFinanceRequest{Title: &title}, uuid.NewString(), domain.RoleMember)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *FinanceHandlerTestSuite) TestListFinances_PassesFilter() {
	s.mockFinanceService.On("ListFinances", mock.Anything,
		mock.MatchedBy(func(p dto.ListFinancesParams) bool {
			return p.Type == "EXPENSE" && p.Page == 2 && p.Limit == 10
		}),
	).Return(&dto.ListFinancesResponse{
		Finances:   []dto.FinanceResponse{},
		Pagination: dto.NewPagination(2, 10, 0),
	}, nil).Once()

	w := s.authedRequest(http.MethodGet, "/api/v1/finances?type=EXPENSE&page=2&limit=10", nil, uuid.NewString(), domain.RoleMember)

	s.Equal(http.StatusOK, w.Code)
	s.mockFinanceService.AssertExpectations(s.T())
}

func (s *FinanceHandlerTestSuite) TestBulkDelete_MemberForbidden() {
	w := s.authedRequest(http.MethodPost, "/api/v1/finances/bulk-delete",
		dto.BulkDeleteRequest{IDs: []string{uuid.NewString()}}, uuid.NewString(), domain.RoleMember)

	s.Equal(http.StatusForbidden, w.Code)
	s.mockFinanceService.AssertNotCalled(s.T(), "BulkDeleteFinances")
}

func (s *FinanceHandlerTestSuite) TestBulkDelete_AdminSuccess() {
	ids := []string{uuid.NewString(), uuid.NewString()}
	s.mockFinanceService.On("BulkDeleteFinances", mock.Anything, ids, mock.Anything).
		Return(nil).Once()

	w := s.authedRequest(http.MethodPost, "/api/v1/finances/bulk-delete",
		dto.BulkDeleteRequest{IDs: ids}, uuid.NewString(), domain.RoleAdmin)

	s.Equal(http.StatusNoContent, w.Code)
	s.mockFinanceService.AssertExpectations(s.T())
}

func (s *FinanceHandlerTestSuite) TestSubmitFinance_Success() {
	financeID := uuid.NewString()
	userID := uuid.NewString()
	approval := &domain.Approval{
		ApprovalID: uuid.NewString(),
		EntityType: domain.EntityFinance,
		EntityID:   financeID,
		UserID:     userID,
		Status:     domain.ApprovalPending,
		CreatedAt:  time.Now(),
	}
	s.mockFinanceService.On("SubmitFinanceForApproval", mock.Anything, financeID,
		mock.MatchedBy(func(a domain.Actor) bool { return a.UserID == userID }),
	).Return(approval, nil).Once()

	w := s.authedRequest(http.MethodPost, "/api/v1/finances/"+financeID+"/submit", nil, userID, domain.RoleMember)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.ApprovalResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(domain.ApprovalPending, resp.Status)
	s.Equal(financeID, resp.EntityID)
}

func (s *FinanceHandlerTestSuite) TestSubmitFinance_AlreadyPending() {
	financeID := uuid.NewString()
	s.mockFinanceService.On("SubmitFinanceForApproval", mock.Anything, financeID, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	w := s.authedRequest(http.MethodPost, "/api/v1/finances/"+financeID+"/submit", nil, uuid.NewString(), domain.RoleMember)

	s.Equal(http.StatusConflict, w.Code)
}

func TestFinanceHandler(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}
