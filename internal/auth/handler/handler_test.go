package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"promptserver/internal/auth/handler/mocks"
	"promptserver/internal/auth/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/requestcontext"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

// fakeAuth authenticates every request as user 7.
func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithUserID(r.Context(), 7)
		ctx = requestcontext.WithAccessToken(ctx, requestcontext.Token{Raw: "raw-token", JTI: "jti"})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.DiscardHandler), fakeAuth, nil).Register(s.router)
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestSignUp() {
	s.Run("201 with the created user", func() {
		s.service.EXPECT().SignUp(gomock.Any(), &models.SignUpRequest{Email: "a@b.io", Password: "abcd123!", Name: "A"}).
			Return(&models.User{ID: 3, Email: "a@b.io", Name: "A", Role: models.RoleUser, Status: models.UserStatusActive}, nil)

		rec := s.do(http.MethodPost, "/api/auth/signup", `{"email":"a@b.io","password":"abcd123!","name":"A"}`)
		s.Equal(http.StatusCreated, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("a@b.io", body["email"])
		s.NotContains(rec.Body.String(), "password")
	})

	s.Run("409 on duplicate email", func() {
		s.service.EXPECT().SignUp(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeConflict, "email is already registered"))

		rec := s.do(http.MethodPost, "/api/auth/signup", `{"email":"a@b.io","password":"abcd123!","name":"A"}`)
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"error":"conflict"`)
	})

	s.Run("400 on unknown fields", func() {
		rec := s.do(http.MethodPost, "/api/auth/signup", `{"email":"a@b.io","admin":true}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestLogin() {
	s.service.EXPECT().Login(gomock.Any(), &models.LoginRequest{Email: "a@b.io", Password: "pw"}).
		Return(&models.TokenResult{AccessToken: "at", RefreshToken: "rt", TokenType: "Bearer", ExpiresIn: 3600}, nil)

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.io","password":"pw"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"accessToken":"at","refreshToken":"rt","tokenType":"Bearer","expiresIn":3600}`, rec.Body.String())
}

func (s *HandlerSuite) TestLoginUnauthorized() {
	s.service.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password"))

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.io","password":"pw"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestRefresh() {
	s.service.EXPECT().Refresh(gomock.Any(), &models.RefreshRequest{RefreshToken: "rt"}).
		Return(&models.TokenResult{AccessToken: "at2", RefreshToken: "rt2", TokenType: "Bearer"}, nil)

	rec := s.do(http.MethodPost, "/api/auth/refresh", `{"refreshToken":"rt"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "rt2")
}

func (s *HandlerSuite) TestLogoutUsesRawToken() {
	s.service.EXPECT().Logout(gomock.Any(), "raw-token").Return(nil)

	rec := s.do(http.MethodPost, "/api/auth/logout", ``)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerSuite) TestLoginHistory() {
	s.service.EXPECT().LoginHistory(gomock.Any(), id.UserID(7), page.Request{Page: 1, Size: 5}).
		Return(page.NewResult([]models.LoginHistoryResponse{{ID: 9, Status: models.LoginStatusSuccess}}, page.Request{Page: 1, Size: 5}, 6), nil)

	rec := s.do(http.MethodGet, "/api/auth/login-history?page=1&size=5", ``)
	s.Equal(http.StatusOK, rec.Code)

	var body page.Result[models.LoginHistoryResponse]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(6, body.TotalElements)
	s.Equal(2, body.TotalPages)
	s.Require().Len(body.Content, 1)
	s.EqualValues(9, body.Content[0].ID)
}

func (s *HandlerSuite) TestInternalErrorHidesMessage() {
	s.service.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.Wrap(assertErr, dErrors.CodeInternal, "failed to load user"))

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.io","password":"pw"}`)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "failed to load user")
}

var assertErr = dErrors.New(dErrors.CodeInternal, "db down")
