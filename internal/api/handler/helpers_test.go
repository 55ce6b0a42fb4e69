package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-console/internal/api/middleware"
	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
)

// newContext builds an echo context with the validator wired the same way the
// router does. body may be nil for bodyless requests.
func newContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate injects verified claims the way the authentication gate does.
func authenticate(c echo.Context, userID, email, role string) {
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextEmail, email)
	c.Set(middleware.ContextRole, role)
}

// envelope mirrors the wire format with the data payload kept raw so tests can
// decode it into the projection under assertion.
type envelope struct {
	ResponseCode    string          `json:"responseCode"`
	ResponseMessage string          `json:"responseMessage"`
	Data            json.RawMessage `json:"data"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:          "user-1",
		FullName:    "Ann Example",
		Email:       "ann@x.com",
		PhoneNumber: "555",
		Username:    "ann",
		Role:        domain.RoleUser,
	}
}

func sampleProduct() *domain.Product {
	return &domain.Product{
		ID:        "product-1",
		Name:      "Keyboard",
		Price:     "49.99",
		Category:  "peripherals",
		CreatedBy: "user-1",
	}
}

// Service stubs with function fields. A test sets only the paths it expects;
// hitting an unset path panics with a nil dereference, which is the failure.

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	profileFn        func(ctx context.Context, id string) (*domain.User, error)
	countUsersFn     func(ctx context.Context) (int64, error)
	updatePasswordFn func(ctx context.Context, id, newPassword string) error
	updateProfileFn  func(ctx context.Context, id string, patch ports.ProfilePatch) (*domain.User, error)
	listUsersFn      func(ctx context.Context) ([]*domain.User, int64, error)
	createUserFn     func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	editUserFn       func(ctx context.Context, id string, input ports.EditUserInput) (*domain.User, error)
	deleteUserFn     func(ctx context.Context, id string) error
}

func (s *stubUserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.profileFn(ctx, id)
}

func (s *stubUserService) CountUsers(ctx context.Context) (int64, error) {
	return s.countUsersFn(ctx)
}

func (s *stubUserService) UpdatePassword(ctx context.Context, id, newPassword string) error {
	return s.updatePasswordFn(ctx, id, newPassword)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, id string, patch ports.ProfilePatch) (*domain.User, error) {
	return s.updateProfileFn(ctx, id, patch)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, int64, error) {
	return s.listUsersFn(ctx)
}

func (s *stubUserService) CreateUser(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.createUserFn(ctx, input)
}

func (s *stubUserService) EditUser(ctx context.Context, id string, input ports.EditUserInput) (*domain.User, error) {
	return s.editUserFn(ctx, id, input)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteUserFn(ctx, id)
}

type stubProductService struct {
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]*domain.Product, int64, error)
	editFn   func(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
	countFn  func(ctx context.Context) (int64, error)
}

func (s *stubProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) ListProducts(ctx context.Context) ([]*domain.Product, int64, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) EditProduct(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	return s.editFn(ctx, id, patch)
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProductService) CountProducts(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
