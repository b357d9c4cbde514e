// Package domain holds typed identifiers shared across bounded contexts.
//
// Numeric ids are database-assigned and never exposed for prompts; prompts are
// addressed externally by their UUID.
package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	dErrors "promptserver/pkg/domain-errors"
)

type (
	UserID     int64
	PromptID   int64
	CategoryID int64
)

// maxIDLength bounds numeric id input before parsing (int64 has 19 digits).
const maxIDLength = 19

func (id UserID) String() string     { return strconv.FormatInt(int64(id), 10) }
func (id PromptID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id CategoryID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id UserID) IsZero() bool     { return id == 0 }
func (id PromptID) IsZero() bool   { return id == 0 }
func (id CategoryID) IsZero() bool { return id == 0 }

func parsePositive(s, field string) (int64, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	if len(s) > maxIDLength || strings.TrimSpace(s) != s {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
	}
	return n, nil
}

func ParseUserID(s string) (UserID, error) {
	n, err := parsePositive(s, "user id")
	return UserID(n), err
}

func ParsePromptID(s string) (PromptID, error) {
	n, err := parsePositive(s, "prompt id")
	return PromptID(n), err
}

func ParseCategoryID(s string) (CategoryID, error) {
	n, err := parsePositive(s, "category id")
	return CategoryID(n), err
}

// ParsePromptUUID parses the public identifier of a prompt template.
func ParsePromptUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "prompt id is required")
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid prompt id")
	}
	return id, nil
}
