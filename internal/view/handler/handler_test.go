package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"promptserver/internal/view/handler/mocks"
	"promptserver/internal/view/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/middleware/metadata"
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

// fakeOptionalAuth signs in user 7 only when an Authorization header is present.
func fakeOptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			r = r.WithContext(requestcontext.WithUserID(r.Context(), 7))
		}
		next.ServeHTTP(w, r)
	})
}

// fakeAdmin lets requests through only with the X-Admin-Token header.
func fakeAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Token") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	s.router.Use(metadata.ClientMetadata)
	s.promptID = uuid.New()
	New(s.service, slog.New(slog.DiscardHandler), fakeOptionalAuth, nil, fakeAdmin).Register(s.router)
}

func (s *HandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	req.RemoteAddr = "203.0.113.9:4711"
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) viewPath() string {
	return "/api/v1/prompts/" + s.promptID.String() + "/view"
}

func (s *HandlerSuite) TestRecordView() {
	s.Run("guest with anonymous id in the body", func() {
		s.service.EXPECT().RecordView(gomock.Any(), models.RecordViewRequest{
			PromptUUID:  s.promptID,
			AnonymousID: "from-body",
			IP:          "203.0.113.9",
		}).Return(&models.RecordViewResponse{Success: true, TotalViewCount: 11, IsNewView: true}, nil)

		req := httptest.NewRequest(http.MethodPost, s.viewPath(), strings.NewReader(`{"anonymousId":"from-body"}`))
		req.AddCookie(&http.Cookie{Name: metadata.AnonymousCookie, Value: "from-cookie"})
		rec := s.do(req)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"totalViewCount":11,"isNewView":true}`, rec.Body.String())
	})

	s.Run("guest falls back to the anonymous cookie", func() {
		s.service.EXPECT().RecordView(gomock.Any(), models.RecordViewRequest{
			PromptUUID:  s.promptID,
			AnonymousID: "from-cookie",
			IP:          "198.51.100.2",
		}).Return(&models.RecordViewResponse{Success: true, TotalViewCount: 3}, nil)

		req := httptest.NewRequest(http.MethodPost, s.viewPath(), nil)
		req.Header.Set("X-Forwarded-For", "198.51.100.2, 10.0.0.1")
		req.AddCookie(&http.Cookie{Name: metadata.AnonymousCookie, Value: "from-cookie"})
		s.Equal(http.StatusOK, s.do(req).Code)
	})

	s.Run("signed-in viewer", func() {
		s.service.EXPECT().RecordView(gomock.Any(), models.RecordViewRequest{
			PromptUUID: s.promptID,
			UserID:     7,
			IP:         "203.0.113.9",
		}).Return(&models.RecordViewResponse{Success: true, TotalViewCount: 1, IsNewView: true}, nil)

		req := httptest.NewRequest(http.MethodPost, s.viewPath(), nil)
		req.Header.Set("Authorization", "Bearer token")
		s.Equal(http.StatusOK, s.do(req).Code)
	})

	s.Run("unknown body fields are rejected", func() {
		req := httptest.NewRequest(http.MethodPost, s.viewPath(), strings.NewReader(`{"userId":1}`))
		s.Equal(http.StatusBadRequest, s.do(req).Code)
	})

	s.Run("missing prompt", func() {
		s.service.EXPECT().RecordView(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "prompt not found"))
		s.Equal(http.StatusNotFound, s.do(httptest.NewRequest(http.MethodPost, s.viewPath(), nil)).Code)
	})

	s.Run("malformed prompt id", func() {
		s.Equal(http.StatusBadRequest, s.do(httptest.NewRequest(http.MethodPost, "/api/v1/prompts/nope/view", nil)).Code)
	})
}

func (s *HandlerSuite) TestViewCount() {
	path := "/api/v1/prompts/" + s.promptID.String() + "/view-count"

	s.Run("guest", func() {
		s.service.EXPECT().GetViewCount(gomock.Any(), s.promptID, id.UserID(0)).
			Return(&models.ViewCountResponse{PromptUUID: s.promptID, TotalViewCount: 42}, nil)

		rec := s.do(httptest.NewRequest(http.MethodGet, path, nil))
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"promptTemplateUuid":"`+s.promptID.String()+`","totalViewCount":42}`, rec.Body.String())
	})

	s.Run("signed in viewer is forwarded", func() {
		s.service.EXPECT().GetViewCount(gomock.Any(), s.promptID, id.UserID(7)).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "you do not have access to this prompt"))

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer token")
		s.Equal(http.StatusForbidden, s.do(req).Code)
	})
}

func (s *HandlerSuite) TestTopPrompts() {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	s.service.EXPECT().TopViewed(gomock.Any(), models.TopViewedQuery{
		Start:       start,
		End:         end,
		CategoryIDs: []id.CategoryID{1, 2, 3},
		Limit:       5,
	}).Return([]*models.TopViewedPrompt{{Rank: 1, PromptID: s.promptID, Title: "Top", PeriodViews: 9, TotalViews: 20}}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/view-statistics/top-prompts?startDate=2026-01-01T00:00:00&endDate=2026-01-31T23:59:59Z&categoryIds=1,2&categoryIds=3&limit=5", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"title":"Top"`)
	s.Contains(rec.Body.String(), `"rank":1`)
}

func (s *HandlerSuite) TestStatisticsValidation() {
	s.Equal(http.StatusBadRequest, s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/top-prompts?limit=ten", nil)).Code)
	s.Equal(http.StatusBadRequest, s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/top-prompts?startDate=yesterday", nil)).Code)
	s.Equal(http.StatusBadRequest, s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/distribution?categoryIds=x", nil)).Code)
	s.Equal(http.StatusBadRequest, s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/daily/0", nil)).Code)
	s.Equal(http.StatusBadRequest, s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/batch?ids=1,abc", nil)).Code)
}

func (s *HandlerSuite) TestDaily() {
	s.service.EXPECT().Daily(gomock.Any(), id.PromptID(12), time.Time{}, time.Time{}).
		Return([]models.DailyViewCount{{Date: "2026-03-10", ViewCount: 4}}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/daily/12", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"date":"2026-03-10","viewCount":4}]`, rec.Body.String())
}

func (s *HandlerSuite) TestDistribution() {
	s.service.EXPECT().Distribution(gomock.Any(), []id.CategoryID(nil)).
		Return([]models.DistributionBucket{{Range: "0-10", PromptCount: 2}}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/distribution", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"range":"0-10","promptCount":2}]`, rec.Body.String())
}

func (s *HandlerSuite) TestTotal() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	s.service.EXPECT().TotalByPeriod(gomock.Any(), start, end, []id.CategoryID(nil)).
		Return(&models.TotalViewsResponse{StartDate: start, EndDate: end, TotalViewCount: 99}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/total?startDate=2026-03-01&endDate=2026-04-01", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totalViewCount":99`)
}

func (s *HandlerSuite) TestBatch() {
	s.service.EXPECT().CountsByPromptIDs(gomock.Any(), []id.PromptID{1, 2}, time.Time{}, time.Time{}).
		Return(map[id.PromptID]int64{1: 5, 2: 0}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/view-statistics/batch?ids=1,2", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"1":5,"2":0}`, rec.Body.String())
}

func (s *HandlerSuite) TestAdminEndpoints() {
	s.Run("require the admin token", func() {
		s.Equal(http.StatusForbidden, s.do(httptest.NewRequest(http.MethodPost, "/api/v1/admin/views/sync", nil)).Code)
	})

	s.Run("sync all", func() {
		s.service.EXPECT().SyncAll(gomock.Any()).Return(models.SyncResult{Prompts: 2, SyncedViews: 5}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/views/sync", nil)
		req.Header.Set("X-Admin-Token", "t")
		rec := s.do(req)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"prompts":2,"syncedViews":5,"failed":0}`, rec.Body.String())
	})

	s.Run("force sync one prompt", func() {
		s.service.EXPECT().ForceSync(gomock.Any(), id.PromptID(4)).Return(int64(3), nil)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/views/sync/4", nil)
		req.Header.Set("X-Admin-Token", "t")
		rec := s.do(req)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"syncedViews":3}`, rec.Body.String())
	})

	s.Run("consistency check", func() {
		s.service.EXPECT().CheckConsistency(gomock.Any()).Return(models.ConsistencyReport{Checked: 3, Inconsistencies: []models.Inconsistency{}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/views/consistency-check", nil)
		req.Header.Set("X-Admin-Token", "t")
		rec := s.do(req)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"checked":3,"inconsistencies":[]}`, rec.Body.String())
	})

	s.Run("internal failures hide details", func() {
		s.service.EXPECT().SyncAll(gomock.Any()).Return(models.SyncResult{}, dErrors.New(dErrors.CodeInternal, "redis scan exploded"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/views/sync", nil)
		req.Header.Set("X-Admin-Token", "t")
		rec := s.do(req)
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.NotContains(rec.Body.String(), "exploded")
	})
}
