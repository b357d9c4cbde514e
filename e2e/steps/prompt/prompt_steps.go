//go:build e2e

package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext is the part of the scenario state the prompt steps use.
type TestContext interface {
	Do(ctx context.Context, method, path string, body any) error
	GetResponseField(field string) (any, error)
	LastStatus() int
	LastBody() []byte
	PromptID() string
	SetPromptID(id string)
}

const prefix = "/api/v1/prompts"

// RegisterSteps registers prompt authoring and engagement steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &promptSteps{tc: tc}

	ctx.Step(`^I create a (public|private) prompt titled "([^"]*)"$`, steps.createPrompt)
	ctx.Step(`^I update the prompt content to "([^"]*)"$`, steps.updateContent)
	ctx.Step(`^I open the prompt$`, steps.openPrompt)
	ctx.Step(`^I list the prompt versions$`, steps.listVersions)
	ctx.Step(`^I (like|unlike) the prompt$`, steps.like)
	ctx.Step(`^I (favorite|unfavorite) the prompt$`, steps.favorite)
	ctx.Step(`^I view the prompt as visitor "([^"]*)"$`, steps.viewAs)
	ctx.Step(`^I delete the prompt$`, steps.deletePrompt)
	ctx.Step(`^the response should list (\d+) items?$`, steps.shouldListItems)
}

type promptSteps struct {
	tc TestContext
}

func (s *promptSteps) path(suffix string) string {
	return prefix + "/" + s.tc.PromptID() + suffix
}

// firstRootCategory returns the id of any system root category.
func (s *promptSteps) firstRootCategory(ctx context.Context) (json.Number, error) {
	if err := s.tc.Do(ctx, http.MethodGet, "/api/v1/categories/roots", nil); err != nil {
		return "", err
	}
	var roots []struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(s.tc.LastBody(), &roots); err != nil {
		return "", fmt.Errorf("decode categories: %w", err)
	}
	if len(roots) == 0 {
		return "", errors.New("no root categories, run promptserver seed first")
	}
	return roots[0].ID, nil
}

func (s *promptSteps) createPrompt(ctx context.Context, visibility, title string) error {
	categoryID, err := s.firstRootCategory(ctx)
	if err != nil {
		return err
	}
	err = s.tc.Do(ctx, http.MethodPost, prefix, map[string]any{
		"title":      title,
		"content":    "Summarize the following text for a busy reader.",
		"categoryId": categoryID,
		"visibility": strings.ToUpper(visibility),
		"status":     "PUBLISHED",
		"tags":       []string{"e2e"},
	})
	if err != nil {
		return err
	}
	if s.tc.LastStatus() != http.StatusCreated {
		return fmt.Errorf("create prompt failed with %d: %s", s.tc.LastStatus(), s.tc.LastBody())
	}
	promptID, err := s.tc.GetResponseField("id")
	if err != nil {
		return err
	}
	s.tc.SetPromptID(fmt.Sprint(promptID))
	return nil
}

// updateContent re-sends the prompt's metadata with new content, which appends a version.
func (s *promptSteps) updateContent(ctx context.Context, content string) error {
	if err := s.openPrompt(ctx); err != nil {
		return err
	}
	title, err := s.tc.GetResponseField("title")
	if err != nil {
		return err
	}
	body := map[string]any{
		"title":      title,
		"content":    content,
		"visibility": "PUBLIC",
		"status":     "PUBLISHED",
	}
	if categoryID, err := s.tc.GetResponseField("categoryId"); err == nil && categoryID != nil {
		body["categoryId"] = categoryID
	}
	return s.tc.Do(ctx, http.MethodPut, s.path(""), body)
}

func (s *promptSteps) openPrompt(ctx context.Context) error {
	return s.tc.Do(ctx, http.MethodGet, s.path(""), nil)
}

func (s *promptSteps) listVersions(ctx context.Context) error {
	return s.tc.Do(ctx, http.MethodGet, s.path("/versions"), nil)
}

func (s *promptSteps) like(ctx context.Context, action string) error {
	method := http.MethodPost
	if action == "unlike" {
		method = http.MethodDelete
	}
	return s.tc.Do(ctx, method, s.path("/like"), nil)
}

func (s *promptSteps) favorite(ctx context.Context, action string) error {
	method := http.MethodPost
	if action == "unfavorite" {
		method = http.MethodDelete
	}
	return s.tc.Do(ctx, method, s.path("/favorite"), nil)
}

func (s *promptSteps) viewAs(ctx context.Context, visitor string) error {
	return s.tc.Do(ctx, http.MethodPost, s.path("/view"), map[string]string{"anonymousId": visitor})
}

func (s *promptSteps) deletePrompt(ctx context.Context) error {
	return s.tc.Do(ctx, http.MethodDelete, s.path(""), nil)
}

func (s *promptSteps) shouldListItems(n int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(s.tc.LastBody(), &items); err != nil {
		return fmt.Errorf("response is not a JSON array: %s", s.tc.LastBody())
	}
	if len(items) != n {
		return fmt.Errorf("expected %d items, got %d: %s", n, len(items), s.tc.LastBody())
	}
	return nil
}
