// Package page carries offset pagination requests and results.
package page

import (
	"net/url"
	"strconv"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Request is a zero-based page request.
type Request struct {
	Page int
	Size int
}

// Normalize clamps page and size into their allowed ranges.
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

func (r Request) Offset() int {
	return r.Page * r.Size
}

// FromQuery reads "page" and "size" query parameters. Unparseable values fall
// back to defaults.
func FromQuery(q url.Values) Request {
	p, _ := strconv.Atoi(q.Get("page"))
	s, _ := strconv.Atoi(q.Get("size"))
	return Request{Page: p, Size: s}.Normalize()
}

// Result is a page of T plus totals.
type Result[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// NewResult builds a result for req. A nil content slice is returned as empty.
func NewResult[T any](content []T, req Request, total int) Result[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return Result[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Map converts the content of r with fn, keeping the totals.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, 0, len(r.Content))
	for _, item := range r.Content {
		out = append(out, fn(item))
	}
	return Result[U]{
		Content:       out,
		Page:          r.Page,
		Size:          r.Size,
		TotalElements: r.TotalElements,
		TotalPages:    r.TotalPages,
	}
}

// Slice pages an in-memory slice. Used by in-memory stores.
func Slice[T any](items []T, req Request) Result[T] {
	req = req.Normalize()
	total := len(items)
	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.Size
	if end > total {
		end = total
	}
	return NewResult(items[start:end], req, total)
}
