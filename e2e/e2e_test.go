//go:build e2e

package e2e

import (
	"context"
	"os"
	"testing"

	"github.com/cucumber/godog"
)

// TestFeatures runs the feature files against PROMPTSERVER_URL
// (default http://localhost:8080). Start the server with "promptserver serve" first.
func TestFeatures(t *testing.T) {
	baseURL := os.Getenv("PROMPTSERVER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	tc := NewTestContext(baseURL)

	suite := godog.TestSuite{
		Name: "promptserver",
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
				tc.Reset()
				return ctx, nil
			})
			RegisterSteps(ctx, tc)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("feature scenarios failed")
	}
}
