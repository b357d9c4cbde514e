//go:build e2e

package e2e

import (
	"github.com/cucumber/godog"

	"promptserver/e2e/steps/auth"
	"promptserver/e2e/steps/common"
	"promptserver/e2e/steps/prompt"
)

// RegisterSteps registers all step definitions from modular packages.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	auth.RegisterSteps(ctx, tc)
	prompt.RegisterSteps(ctx, tc)
}
