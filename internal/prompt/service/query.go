package service

import (
	"context"

	"github.com/google/uuid"

	"promptserver/internal/prompt/models"
	searchmodels "promptserver/internal/search/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
)

// Get returns the prompt detail when viewer may see it. viewer is zero for guests.
func (s *Service) Get(ctx context.Context, promptUUID uuid.UUID, viewer id.UserID) (*models.PromptDetail, error) {
	t, err := s.FindActive(ctx, promptUUID)
	if err != nil {
		return nil, err
	}
	if !t.CanView(viewer) {
		return nil, dErrors.New(dErrors.CodeForbidden, "you do not have access to this prompt")
	}
	v, err := s.currentVersion(ctx, t)
	if err != nil {
		return nil, err
	}
	author, err := s.author(ctx, t.CreatedByID)
	if err != nil {
		return nil, err
	}
	categoryName, err := s.optionalCategoryName(ctx, t.CategoryID)
	if err != nil {
		return nil, err
	}
	return buildDetail(t, v, author, categoryName), nil
}

func publishedPublic() models.Filter {
	return models.Filter{
		Statuses:     []models.Status{models.StatusPublished},
		Visibilities: []models.Visibility{models.VisibilityPublic},
	}
}

func (s *Service) ListPublic(ctx context.Context, sort models.SortType, req page.Request) (page.Result[models.PromptSummary], error) {
	f := publishedPublic()
	f.Sort = sort
	return s.list(ctx, f, req)
}

func (s *Service) ListByAuthor(ctx context.Context, authorID id.UserID, req page.Request) (page.Result[models.PromptSummary], error) {
	f := publishedPublic()
	f.AuthorID = &authorID
	return s.list(ctx, f, req)
}

func (s *Service) ListByCategory(ctx context.Context, categoryID id.CategoryID, req page.Request) (page.Result[models.PromptSummary], error) {
	f := publishedPublic()
	f.CategoryID = &categoryID
	return s.list(ctx, f, req)
}

// AdvancedSearch filters across all prompts. Deleted prompts are excluded
// unless IncludeDeleted is set, and asking for the DELETED status does not
// lift that.
func (s *Service) AdvancedSearch(ctx context.Context, cond models.AdvancedSearchCondition) (page.Result[models.PromptSummary], error) {
	if cond.Status == models.StatusDeleted && !cond.IncludeDeleted {
		return page.Result[models.PromptSummary]{}, dErrors.New(dErrors.CodeValidation, "deleted prompts cannot be searched")
	}
	return s.list(ctx, cond.Filter(), cond.Page)
}

// ListMine lists the caller's prompts by status, visibility and keyword.
func (s *Service) ListMine(ctx context.Context, cond models.MyPromptCondition) (page.Result[models.PromptSummary], error) {
	if cond.UserID.IsZero() {
		return page.Result[models.PromptSummary]{}, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return s.list(ctx, cond.Filter(), cond.Page)
}

func (s *Service) MyStatistics(ctx context.Context, userID id.UserID) (models.MyStatistics, error) {
	counts, err := s.templates.CountByStatus(ctx, &userID)
	if err != nil {
		return models.MyStatistics{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count prompts")
	}
	return models.NewMyStatistics(counts), nil
}

// Search runs a keyword query against the search index and loads the hits in rank order.
func (s *Service) Search(ctx context.Context, keyword string, req page.Request) (page.Result[models.PromptSummary], error) {
	hits, err := s.search.Search(ctx, searchmodels.Query{Keyword: keyword, Page: req})
	if err != nil {
		return page.Result[models.PromptSummary]{}, err
	}
	templates, err := s.templates.FindByIDs(ctx, hits.Content)
	if err != nil {
		return page.Result[models.PromptSummary]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load search results")
	}
	visible := templates[:0]
	for _, t := range templates {
		if t.IsPublic() && t.Status == models.StatusPublished {
			visible = append(visible, t)
		}
	}
	summaries, err := s.Summaries(ctx, visible)
	if err != nil {
		return page.Result[models.PromptSummary]{}, err
	}
	// Hits the index still holds for prompts that went private, unpublished or
	// missing are left out of the totals too.
	total := max(hits.TotalElements-(len(hits.Content)-len(visible)), 0)
	return page.NewResult(summaries, page.Request{Page: hits.Page, Size: hits.Size}, total), nil
}

func (s *Service) list(ctx context.Context, f models.Filter, req page.Request) (page.Result[models.PromptSummary], error) {
	req = req.Normalize()
	templates, total, err := s.templates.List(ctx, f, req)
	if err != nil {
		return page.Result[models.PromptSummary]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list prompts")
	}
	summaries, err := s.Summaries(ctx, templates)
	if err != nil {
		return page.Result[models.PromptSummary]{}, err
	}
	return page.NewResult(summaries, req, total), nil
}
