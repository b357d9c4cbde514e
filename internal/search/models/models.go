// Package models defines the documents held by the prompt search index.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/page"
)

const (
	VisibilityPublic = "PUBLIC"
	StatusPublished  = "PUBLISHED"
)

// Document is the searchable projection of a prompt template.
type Document struct {
	PromptID    id.PromptID
	UUID        uuid.UUID
	Title       string
	Description string
	Content     string
	Tags        []string
	CategoryID  *id.CategoryID
	Visibility  string
	Status      string
	UpdatedAt   time.Time
}

// Searchable reports whether the document may appear in public results.
func (d Document) Searchable() bool {
	return d.Visibility == VisibilityPublic && d.Status == StatusPublished
}

type Query struct {
	Keyword string
	Page    page.Request
}

func (q Query) Normalize() Query {
	q.Keyword = strings.TrimSpace(q.Keyword)
	q.Page = q.Page.Normalize()
	return q
}

// Hit is one ranked search result.
type Hit struct {
	PromptID id.PromptID
	Score    float64
}
