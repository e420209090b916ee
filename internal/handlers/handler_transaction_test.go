package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finpulse/finpulse_backend/internal/apperrors"
	"github.com/finpulse/finpulse_backend/internal/core/domain"
	portssvc "github.com/finpulse/finpulse_backend/internal/core/ports/services"
	"github.com/finpulse/finpulse_backend/internal/dto"
	"github.com/finpulse/finpulse_backend/internal/handlers"
	"github.com/finpulse/finpulse_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Hydrate(ctx context.Context, userID string) (domain.SessionSnapshot, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.SessionSnapshot), args.Error(1)
}

func (m *MockSessionService) Snapshot(ctx context.Context, userID string) (domain.SessionSnapshot, bool) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.SessionSnapshot), args.Bool(1)
}

func (m *MockSessionService) SignOut(ctx context.Context, userID string) {
	m.Called(ctx, userID)
}

func (m *MockSessionService) AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockSessionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockSessionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *MockSessionService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.RevenueSettings, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueSettings), args.Error(1)
}

func (m *MockSessionService) SyncTiers(ctx context.Context, userID string, req dto.SyncTiersRequest) ([]domain.PricingTier, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingTier), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockSessionService *MockSessionService
	jwtSecret          string
	userID             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finpulse-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSessionService = new(MockSessionService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockSessionService)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		Amount:         decimal.NewFromInt(250),
		Kind:           "income",
		Category:       "Income",
		Description:    "design sprint",
		OccurredAt:     "2026-08-20",
		AccountContext: "business",
	}
	created := &domain.Transaction{
		TransactionID:  uuid.NewString(),
		UserID:         suite.userID,
		Amount:         req.Amount,
		Kind:           domain.KindIncome,
		Category:       domain.CategoryIncome,
		Description:    req.Description,
		OccurredAt:     time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		AccountContext: domain.ContextBusiness,
		Status:         domain.StatusCompleted,
	}

	suite.mockSessionService.On("AddTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		suite.userID,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.Description == "design sprint" && r.Amount.Equal(decimal.NewFromInt(250))
		}),
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal("completed", resp.Status)
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorIs400() {
	req := dto.CreateTransactionRequest{
		Amount:         decimal.NewFromInt(250),
		Kind:           "income",
		Category:       "Income",
		Description:    "   ",
		OccurredAt:     "2026-08-20",
		AccountContext: "business",
	}

	suite.mockSessionService.On("AddTransaction",
		mock.AnythingOfType("*context.valueCtx"), suite.userID, mock.Anything,
	).Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_BadKindRejectedByBinding() {
	body := map[string]any{
		"amount":         "10",
		"kind":           "sideways",
		"category":       "Income",
		"description":    "x",
		"occurredAt":     "2026-08-20",
		"accountContext": "business",
	}

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSessionService.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_FiltersByKind() {
	snap := domain.SessionSnapshot{
		State: domain.SessionReady,
		Transactions: []domain.Transaction{
			{TransactionID: uuid.NewString(), UserID: suite.userID, Kind: domain.KindIncome, Amount: decimal.NewFromInt(100), Description: "a"},
			{TransactionID: uuid.NewString(), UserID: suite.userID, Kind: domain.KindExpense, Amount: decimal.NewFromInt(40), Description: "b"},
		},
	}
	suite.mockSessionService.On("Snapshot", mock.AnythingOfType("*context.valueCtx"), suite.userID).Return(snap, true).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?kind=expense", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("expense", resp[0].Kind)
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_HydratesWhenNotReady() {
	empty := domain.SessionSnapshot{State: domain.SessionUnauthenticated}
	ready := domain.SessionSnapshot{State: domain.SessionReady, Transactions: []domain.Transaction{}}

	suite.mockSessionService.On("Snapshot", mock.AnythingOfType("*context.valueCtx"), suite.userID).Return(empty, false).Once()
	suite.mockSessionService.On("Hydrate", mock.AnythingOfType("*context.valueCtx"), suite.userID).Return(ready, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFoundIs404() {
	transactionID := uuid.NewString()
	suite.mockSessionService.On("DeleteTransaction",
		mock.AnythingOfType("*context.valueCtx"), suite.userID, transactionID,
	).Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestMissingTokenIs401() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
