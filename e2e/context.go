//go:build e2e

// Package e2e drives a running promptserver over HTTP with godog scenarios.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TestContext carries the state of one scenario: the last response and the
// credentials and prompt id earlier steps produced.
type TestContext struct {
	baseURL string
	client  *http.Client
	runID   string

	lastStatus  int
	lastBody    []byte
	accessToken string
	promptID    string
}

func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		runID:   uuid.NewString()[:8],
	}
}

// Reset clears per-scenario state. The run id survives so accounts created by
// one scenario can be reused by the next.
func (tc *TestContext) Reset() {
	tc.lastStatus = 0
	tc.lastBody = nil
	tc.accessToken = ""
	tc.promptID = ""
}

// Do sends a JSON request, attaching the bearer token when one is set.
func (tc *TestContext) Do(ctx context.Context, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	return tc.send(ctx, method, path, reader)
}

// DoRaw sends body verbatim as JSON.
func (tc *TestContext) DoRaw(ctx context.Context, method, path, body string) error {
	return tc.send(ctx, method, path, strings.NewReader(body))
}

func (tc *TestContext) send(ctx context.Context, method, path string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.lastStatus = resp.StatusCode
	tc.lastBody, err = io.ReadAll(resp.Body)
	return err
}

// GetResponseField reads a dotted path ("author.name") from the last JSON response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var cur any
	if err := json.Unmarshal(tc.lastBody, &cur); err != nil {
		return nil, fmt.Errorf("response is not JSON: %s", tc.lastBody)
	}
	for _, part := range strings.Split(field, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q: %q is not an object", field, part)
		}
		cur, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in %s", field, tc.lastBody)
		}
	}
	return cur, nil
}

// UniqueEmail tags the local part with the run id so repeated runs against
// one database do not collide.
func (tc *TestContext) UniqueEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	return local + "+" + tc.runID + "@" + domain
}

func (tc *TestContext) LastStatus() int { return tc.lastStatus }
func (tc *TestContext) LastBody() []byte { return tc.lastBody }
func (tc *TestContext) AccessToken() string { return tc.accessToken }
func (tc *TestContext) SetAccessToken(t string) { tc.accessToken = t }
func (tc *TestContext) PromptID() string { return tc.promptID }
func (tc *TestContext) SetPromptID(id string) { tc.promptID = id }
