package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"promptserver/internal/like/handler/mocks"
	"promptserver/internal/like/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/requestcontext"
)

type HandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	service  *mocks.MockService
	router   chi.Router
	promptID uuid.UUID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(requestcontext.WithUserID(r.Context(), 7)))
	})
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	s.promptID = uuid.New()
	New(s.service, slog.New(slog.DiscardHandler), fakeAuth).Register(s.router)
}

func (s *HandlerSuite) do(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func (s *HandlerSuite) TestAddAndRemove() {
	s.service.EXPECT().AddLike(gomock.Any(), id.UserID(7), s.promptID).Return(models.LikeResponse{LikeCount: 4}, nil)
	rec := s.do(http.MethodPost, "/api/v1/prompts/"+s.promptID.String()+"/like")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"likeCount":4}`, rec.Body.String())

	s.service.EXPECT().RemoveLike(gomock.Any(), id.UserID(7), s.promptID).
		Return(models.LikeResponse{}, dErrors.New(dErrors.CodeNotFound, "like not found"))
	rec = s.do(http.MethodDelete, "/api/v1/prompts/"+s.promptID.String()+"/like")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestStatus() {
	s.service.EXPECT().Status(gomock.Any(), id.UserID(7), s.promptID).Return(models.LikeStatus{Liked: true, LikeCount: 2}, nil)
	rec := s.do(http.MethodGet, "/api/v1/prompts/"+s.promptID.String()+"/like-status")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"liked":true,"likeCount":2}`, rec.Body.String())
}

func (s *HandlerSuite) TestListLiked() {
	s.service.EXPECT().ListLiked(gomock.Any(), id.UserID(7), page.Request{Page: 1, Size: 10}).
		Return(page.NewResult([]models.LikedPrompt{{ID: s.promptID, Title: "t"}}, page.Request{Page: 1, Size: 10}, 11), nil)
	rec := s.do(http.MethodGet, "/api/v1/prompts/liked?page=1&size=10")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totalElements":11`)
}

func (s *HandlerSuite) TestMyStatistics() {
	s.service.EXPECT().MyLikeStatistics(gomock.Any(), id.UserID(7)).Return(models.MyLikeStatistics{TotalLikeCount: 12}, nil)
	rec := s.do(http.MethodGet, "/api/v1/prompts/my/like-statistics")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"totalLikeCount":12}`, rec.Body.String())
}
