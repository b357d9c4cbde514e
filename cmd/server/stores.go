package main

import (
	"context"

	authservice "promptserver/internal/auth/service"
	loginhistory "promptserver/internal/auth/store/login-history"
	refreshtoken "promptserver/internal/auth/store/refresh-token"
	"promptserver/internal/auth/store/revocation"
	userstore "promptserver/internal/auth/store/user"
	categorymodels "promptserver/internal/category/models"
	categoryservice "promptserver/internal/category/service"
	categorystore "promptserver/internal/category/store"
	favoriteservice "promptserver/internal/favorite/service"
	favoritestore "promptserver/internal/favorite/store"
	likeservice "promptserver/internal/like/service"
	likestore "promptserver/internal/like/store"
	promptservice "promptserver/internal/prompt/service"
	tagstore "promptserver/internal/prompt/store/tag"
	templatestore "promptserver/internal/prompt/store/template"
	versionstore "promptserver/internal/prompt/store/version"
	searchservice "promptserver/internal/search/service"
	searchstore "promptserver/internal/search/store"
	statisticsservice "promptserver/internal/statistics/service"
	viewservice "promptserver/internal/view/service"
	viewstore "promptserver/internal/view/store"
	"promptserver/pkg/platform/tx"
)

// userStore is every view of the user table the services need.
type userStore interface {
	authservice.UserStore
	statisticsservice.UserCounter
}

// templateStore is the prompt table as seen by every context that reads or
// maintains it.
type templateStore interface {
	promptservice.TemplateStore
	viewservice.PromptStore
	statisticsservice.PromptStore
	favoriteservice.PromptCounter
	likeservice.PromptCounter
}

type categoryStore interface {
	categoryservice.Store
	FindByName(ctx context.Context, name string) (*categorymodels.Category, error)
}

// stores groups one implementation per table, chosen by the configured backends.
type stores struct {
	users         userStore
	refreshTokens authservice.RefreshTokenStore
	loginHistory  authservice.LoginHistoryStore
	blacklist     authservice.TokenBlacklist
	categories    categoryStore
	templates     templateStore
	versions      promptservice.VersionStore
	tags          promptservice.TagStore
	search        searchservice.Index
	favorites     favoriteservice.Store
	likes         likeservice.Store
	views         viewservice.RecordStore
	tx            tx.Runner

	// purger is set when revoked tokens live in postgres and need expiring by hand.
	purger *revocation.PostgresBlacklist
}

func newStores(in *infra) *stores {
	if in.db == nil {
		s := &stores{
			users:         userstore.New(),
			refreshTokens: refreshtoken.New(),
			loginHistory:  loginhistory.New(),
			blacklist:     revocation.NewInMemoryBlacklist(),
			categories:    categorystore.NewInMemory(),
			templates:     templatestore.NewInMemory(),
			versions:      versionstore.NewInMemory(),
			tags:          tagstore.NewInMemory(),
			search:        searchstore.NewInMemory(),
			favorites:     favoritestore.NewInMemory(),
			likes:         likestore.NewInMemory(),
			views:         viewstore.NewInMemory(),
			tx:            tx.NoopRunner{},
		}
		if in.redis != nil {
			s.blacklist = revocation.NewRedisBlacklist(in.redis.Client)
		}
		return s
	}

	s := &stores{
		users:         userstore.NewPostgres(in.db),
		refreshTokens: refreshtoken.NewPostgres(in.db),
		loginHistory:  loginhistory.NewPostgres(in.db),
		categories:    categorystore.NewPostgres(in.db),
		templates:     templatestore.NewPostgres(in.db),
		versions:      versionstore.NewPostgres(in.db),
		tags:          tagstore.NewPostgres(in.db),
		search:        searchstore.NewPostgres(in.db),
		favorites:     favoritestore.NewPostgres(in.db),
		likes:         likestore.NewPostgres(in.db),
		views:         viewstore.NewPostgres(in.db),
		tx:            tx.NewSQLRunner(in.db),
	}
	if in.redis != nil {
		s.blacklist = revocation.NewRedisBlacklist(in.redis.Client)
	} else {
		s.purger = revocation.NewPostgresBlacklist(in.db)
		s.blacklist = s.purger
	}
	return s
}
