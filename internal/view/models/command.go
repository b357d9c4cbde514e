package models

import (
	"strings"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

// RecordViewRequest is the unresolved input of a view: the prompt is still a uuid.
type RecordViewRequest struct {
	PromptUUID  uuid.UUID
	UserID      id.UserID
	AnonymousID string
	IP          string
}

// RecordViewCommand is a validated view of a resolved prompt.
type RecordViewCommand struct {
	PromptUUID  uuid.UUID
	PromptID    id.PromptID
	UserID      id.UserID
	AnonymousID string
	IP          string
}

// ForUser builds the command for an authenticated viewer.
func ForUser(promptUUID uuid.UUID, promptID id.PromptID, userID id.UserID, ip string) (*RecordViewCommand, error) {
	if userID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user id is required")
	}
	cmd := &RecordViewCommand{PromptUUID: promptUUID, PromptID: promptID, UserID: userID, IP: strings.TrimSpace(ip)}
	return cmd, cmd.validate()
}

// ForGuest builds the command for an anonymous viewer. A blank anonymous id
// leaves the IP as the only identity.
func ForGuest(promptUUID uuid.UUID, promptID id.PromptID, anonymousID, ip string) (*RecordViewCommand, error) {
	cmd := &RecordViewCommand{
		PromptUUID:  promptUUID,
		PromptID:    promptID,
		AnonymousID: strings.TrimSpace(anonymousID),
		IP:          strings.TrimSpace(ip),
	}
	return cmd, cmd.validate()
}

func (c *RecordViewCommand) validate() error {
	if c.PromptUUID == uuid.Nil {
		return dErrors.New(dErrors.CodeInvariantViolation, "prompt uuid is required")
	}
	if c.PromptID.IsZero() {
		return dErrors.New(dErrors.CodeInvariantViolation, "prompt id is required")
	}
	if c.IP == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "ip address is required")
	}
	return nil
}

func (c *RecordViewCommand) IsAuthenticated() bool {
	return !c.UserID.IsZero()
}

func (c *RecordViewCommand) Identifier() Identifier {
	switch {
	case c.IsAuthenticated():
		return Identifier{Kind: IdentifierUser, Value: c.UserID.String()}
	case c.AnonymousID != "":
		return Identifier{Kind: IdentifierAnonymous, Value: c.AnonymousID}
	default:
		return Identifier{Kind: IdentifierIP, Value: sanitizeIP(c.IP)}
	}
}
