package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/mocks"
	"marketplace/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	router    *gin.Engine
	tokens    *auth.Tokens
	users     *mocks.MockUserRepository
	products  *mocks.MockProductRepository
	factories *mocks.MockFactoryRepository
	orders    *mocks.MockOrderRepository
	settings  *mocks.MockSettingsRepository
	publisher *mocks.MockPublisher
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	ts := &testServer{
		users:     new(mocks.MockUserRepository),
		products:  new(mocks.MockProductRepository),
		factories: new(mocks.MockFactoryRepository),
		orders:    new(mocks.MockOrderRepository),
		settings:  new(mocks.MockSettingsRepository),
		publisher: new(mocks.MockPublisher),
	}
	ts.tokens = auth.NewTokens("test-secret", time.Hour, ts.users)
	stats := services.NewStatsService(ts.users, ts.products, ts.orders)
	svc := Services{
		Auth:      services.NewAuthService(ts.users, auth.NewHasher(bcrypt.MinCost), ts.tokens, ts.publisher, "letmein"),
		Profile:   services.NewProfileService(ts.users),
		Products:  services.NewProductService(ts.products, ts.factories, ts.users),
		Factories: services.NewFactoryService(ts.factories),
		Orders:    services.NewOrderService(ts.orders, ts.products, ts.publisher),
		Vendors:   services.NewVendorService(ts.users, stats, ts.publisher),
		Stats:     stats,
		Settings:  services.NewSettingsService(ts.settings),
	}
	ts.router = gin.New()
	NewHandler(svc, ts.tokens).RegisterRoutes(ts.router)
	return ts
}

// login registers u with the user store and returns a bearer header value.
func (ts *testServer) login(t *testing.T, u *domain.User) string {
	t.Helper()
	ts.users.On("FindByID", mock.Anything, u.ID).Return(u, nil)
	tok, err := ts.tokens.Issue(u.ID)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (ts *testServer) do(method, path, bearer string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func user(role domain.Role, vs domain.VendorStatus) *domain.User {
	return &domain.User{ID: uuid.New(), Name: "Acme", Email: string(role) + "@example.com", Role: role, VendorStatus: vs}
}

func TestHandler_RegisterSeller(t *testing.T) {
	ts := newTestServer()
	ts.users.On("FindByEmail", mock.Anything, "acme@example.com").Return(nil, nil)
	ts.users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	ts.publisher.On("Publish", mock.Anything, domain.EventUserRegistered, mock.Anything).Return(nil)

	w := ts.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Acme", "email": "acme@example.com", "password": "secret1", "role": "seller",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "pending", body["user"].(map[string]any)["vendorStatus"])
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*testing.T, *testServer) (method, path, bearer string, body any)
		wantStatus int
		wantCode   string
	}{
		{
			name: "no session",
			setup: func(t *testing.T, ts *testServer) (string, string, string, any) {
				return http.MethodPost, "/api/products", "", gin.H{"name": "x"}
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name: "garbage token",
			setup: func(t *testing.T, ts *testServer) (string, string, string, any) {
				return http.MethodGet, "/api/auth/me", "Bearer nope", nil
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_INVALID",
		},
		{
			name: "pending seller creating a product",
			setup: func(t *testing.T, ts *testServer) (string, string, string, any) {
				bearer := ts.login(t, user(domain.RoleSeller, domain.VendorPending))
				return http.MethodPost, "/api/products", bearer, gin.H{"name": "Cement"}
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "VENDOR_PENDING",
		},
		{
			name: "updating another seller's product",
			setup: func(t *testing.T, ts *testServer) (string, string, string, any) {
				bearer := ts.login(t, user(domain.RoleSeller, domain.VendorApproved))
				prod := &domain.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Cement", IsActive: true}
				ts.products.On("FindByID", mock.Anything, prod.ID).Return(prod, nil)
				return http.MethodPatch, "/api/products/" + prod.ID.String(), bearer, gin.H{"name": "Mine"}
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND_OR_NOT_OWNED",
		},
		{
			name: "malformed id",
			setup: func(t *testing.T, ts *testServer) (string, string, string, any) {
				return http.MethodGet, "/api/products/not-a-uuid", "", nil
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name: "bad body",
			setup: func(t *testing.T, ts *testServer) (string, string, string, any) {
				return http.MethodPost, "/api/auth/register", "", gin.H{"email": "not-an-email"}
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "duplicate admin",
			setup: func(t *testing.T, ts *testServer) (string, string, string, any) {
				ts.users.On("FindAdmin", mock.Anything).Return(user(domain.RoleAdmin, 0), nil)
				return http.MethodPost, "/api/admin/register", "", gin.H{
					"name": "Root", "email": "root@example.com", "password": "secret1", "secretCode": "letmein",
				}
			},
			wantStatus: http.StatusConflict,
			wantCode:   "ADMIN_EXISTS",
		},
		{
			name: "storage failure is opaque",
			setup: func(t *testing.T, ts *testServer) (string, string, string, any) {
				ts.products.On("ListActive", mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.3:3306: refused"))
				return http.MethodGet, "/api/products", "", nil
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORAGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			method, path, bearer, body := tt.setup(t, ts)

			w := ts.do(method, path, bearer, body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			resp := decode(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, tt.wantCode, resp["code"])
			assert.NotContains(t, w.Body.String(), "10.0.0.3")
		})
	}
}

func TestHandler_CreateOrderAndStats(t *testing.T) {
	ts := newTestServer()
	customer := user(domain.RoleCustomer, 0)
	bearer := ts.login(t, customer)
	prod := &domain.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Cement", Price: decimal.NewFromInt(10), IsActive: true}

	ts.products.On("FindByIDs", mock.Anything, []uuid.UUID{prod.ID}).Return([]domain.Product{*prod}, nil)
	ts.orders.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	ts.publisher.On("Publish", mock.Anything, domain.EventOrderCreated, mock.Anything).Return(nil)

	w := ts.do(http.MethodPost, "/api/orders", bearer, gin.H{
		"products":        []gin.H{{"productId": prod.ID, "quantity": 2}},
		"totalAmount":     20,
		"shippingAddress": "12 Nile St",
		"phone":           "0100",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode(t, w)["order"].(map[string]any)
	assert.Equal(t, "20", order["totalAmount"])
	assert.Equal(t, "pending", order["status"])

	w = ts.do(http.MethodGet, "/api/stats", bearer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := user(domain.RoleAdmin, 0)
	adminBearer := ts.login(t, admin)
	ts.users.On("Count", mock.Anything).Return(int64(2), nil)
	ts.products.On("Count", mock.Anything).Return(int64(1), nil)
	ts.orders.On("Count", mock.Anything).Return(int64(1), nil)
	ts.orders.On("EachBatch", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Order{
		{TotalAmount: decimal.NewFromInt(20), Status: domain.StatusPending},
	}, nil)

	w = ts.do(http.MethodGet, "/api/stats", adminBearer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stats := decode(t, w)["stats"].(map[string]any)
	assert.Equal(t, "20", stats["revenue"])
	assert.Equal(t, float64(2), stats["users"])
}

func TestHandler_PublicRoutes(t *testing.T) {
	ts := newTestServer()
	ts.factories.On("ListAll", mock.Anything).Return([]domain.Factory{{ID: uuid.New(), Name: "Nile Bricks"}}, nil)
	ts.users.On("FindAdmin", mock.Anything).Return(nil, nil)

	w := ts.do(http.MethodGet, "/api/factories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["factories"], 1)

	w = ts.do(http.MethodGet, "/api/admin/check", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["adminExists"])

	w = ts.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
