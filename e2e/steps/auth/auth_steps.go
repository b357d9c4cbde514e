//go:build e2e

package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext is the part of the scenario state the auth steps use.
type TestContext interface {
	Do(ctx context.Context, method, path string, body any) error
	GetResponseField(field string) (any, error)
	LastStatus() int
	LastBody() []byte
	UniqueEmail(email string) string
	AccessToken() string
	SetAccessToken(token string)
}

// RegisterSteps registers sign-up, login and session steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &authSteps{tc: tc}

	ctx.Step(`^a user "([^"]*)" with password "([^"]*)"$`, steps.userExists)
	ctx.Step(`^I sign up as "([^"]*)" with password "([^"]*)"$`, steps.signUp)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, steps.logIn)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, steps.loggedInAs)
	ctx.Step(`^I should receive tokens$`, steps.shouldReceiveTokens)
	ctx.Step(`^I log out$`, steps.logOut)
	ctx.Step(`^I request my login history$`, steps.requestLoginHistory)
}

type authSteps struct {
	tc TestContext
}

func (s *authSteps) signUp(ctx context.Context, email, password string) error {
	local, _, _ := strings.Cut(email, "@")
	return s.tc.Do(ctx, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    s.tc.UniqueEmail(email),
		"password": password,
		"name":     local,
	})
}

// userExists signs up and tolerates an account left over from an earlier scenario.
func (s *authSteps) userExists(ctx context.Context, email, password string) error {
	if err := s.signUp(ctx, email, password); err != nil {
		return err
	}
	switch s.tc.LastStatus() {
	case http.StatusCreated, http.StatusConflict:
		return nil
	default:
		return fmt.Errorf("sign-up failed with %d: %s", s.tc.LastStatus(), s.tc.LastBody())
	}
}

func (s *authSteps) logIn(ctx context.Context, email, password string) error {
	s.tc.SetAccessToken("")
	return s.tc.Do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    s.tc.UniqueEmail(email),
		"password": password,
	})
}

func (s *authSteps) loggedInAs(ctx context.Context, email, password string) error {
	if err := s.userExists(ctx, email, password); err != nil {
		return err
	}
	if err := s.logIn(ctx, email, password); err != nil {
		return err
	}
	return s.shouldReceiveTokens()
}

func (s *authSteps) shouldReceiveTokens() error {
	if s.tc.LastStatus() != http.StatusOK {
		return fmt.Errorf("login failed with %d: %s", s.tc.LastStatus(), s.tc.LastBody())
	}
	token, err := s.tc.GetResponseField("accessToken")
	if err != nil {
		return err
	}
	access, ok := token.(string)
	if !ok || access == "" {
		return fmt.Errorf("accessToken missing from %s", s.tc.LastBody())
	}
	if _, err := s.tc.GetResponseField("refreshToken"); err != nil {
		return err
	}
	s.tc.SetAccessToken(access)
	return nil
}

// logOut keeps the revoked token so later steps can prove it no longer works.
func (s *authSteps) logOut(ctx context.Context) error {
	return s.tc.Do(ctx, http.MethodPost, "/api/auth/logout", nil)
}

func (s *authSteps) requestLoginHistory(ctx context.Context) error {
	return s.tc.Do(ctx, http.MethodGet, "/api/auth/login-history", nil)
}
