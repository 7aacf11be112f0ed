//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"transit-booking/internal/domain/principal"
	"transit-booking/internal/handler/middleware"
	"transit-booking/tests/common/httptest"
	usecasemock "transit-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, validator *usecasemock.MockTokenValidator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.NewAuthMiddleware(validator)

	ok := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.String(), "role": role.String()})
	}

	operators := router.Group("/operators", auth.RequireAuth(), auth.RequireRoleAtLeast(principal.RoleOperator))
	operators.GET("/bookings", ok)
	operators.GET("/notifications", auth.RequireRoleAtLeast(principal.RoleAdmin), ok)
	return router
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name        string
		path        string
		token       string
		setupMock   func(*usecasemock.MockTokenValidator)
		expectCode  int
		expectedMsg string
	}{
		{
			name:        "error: missing token",
			path:        "/operators/bookings",
			setupMock:   func(*usecasemock.MockTokenValidator) {},
			expectCode:  http.StatusUnauthorized,
			expectedMsg: "Access token required",
		},
		{
			name:  "error: invalid token",
			path:  "/operators/bookings",
			token: "garbage",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("garbage").Return(principal.Principal{}, errors.New("token is malformed"))
			},
			expectCode:  http.StatusUnauthorized,
			expectedMsg: "Invalid or expired token",
		},
		{
			name:  "success: operator reads bookings",
			path:  "/operators/bookings",
			token: "operator-token",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("operator-token").Return(principal.Principal{UserID: userID, Role: principal.RoleOperator}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:  "error: operator denied admin route",
			path:  "/operators/notifications",
			token: "operator-token",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("operator-token").Return(principal.Principal{UserID: userID, Role: principal.RoleOperator}, nil)
			},
			expectCode:  http.StatusForbidden,
			expectedMsg: "Insufficient permissions",
		},
		{
			name:  "success: admin reads notifications",
			path:  "/operators/notifications",
			token: "admin-token",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("admin-token").Return(principal.Principal{UserID: userID, Role: principal.RoleAdmin}, nil)
			},
			expectCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)
			router := newAuthRouter(t, validator)

			rec := httptest.PerformRequest(t, router, http.MethodGet, tc.path, nil, tc.token)

			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectedMsg)
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, userID.String(), body["userId"])
		})
	}
}
