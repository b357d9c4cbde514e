package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

type IdentifierKind string

const (
	IdentifierUser      IdentifierKind = "AUTHENTICATED_USER"
	IdentifierAnonymous IdentifierKind = "ANONYMOUS_USER"
	IdentifierIP        IdentifierKind = "IP_BASED_USER"
)

const (
	countKeyPrefix = "viewcount:"
	// CountKeyPattern matches every pending view count key.
	CountKeyPattern = countKeyPrefix + "*"
)

var unsafeIPChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]`)

func sanitizeIP(ip string) string {
	return unsafeIPChars.ReplaceAllString(ip, "_")
}

// Identifier names the viewer for duplicate detection.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

func (i Identifier) String() string {
	switch i.Kind {
	case IdentifierUser:
		return "user:" + i.Value
	case IdentifierAnonymous:
		return "anon:" + i.Value
	default:
		return "ip:" + i.Value
	}
}

// DuplicateKey is the key marking that this viewer already saw the prompt.
func (i Identifier) DuplicateKey(promptID id.PromptID) string {
	return fmt.Sprintf("view:%s:prompt:%d", i, int64(promptID))
}

// CountKey holds the views of a prompt not yet synced to the database.
func CountKey(promptID id.PromptID) string {
	return countKeyPrefix + strconv.FormatInt(int64(promptID), 10)
}

// PromptIDFromCountKey reverses CountKey.
func PromptIDFromCountKey(key string) (id.PromptID, error) {
	raw, ok := strings.CutPrefix(key, countKeyPrefix)
	if !ok || raw == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "malformed view count key: "+key)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "malformed view count key: "+key)
	}
	return id.PromptID(n), nil
}
