package models

import "strings"

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityTeam    Visibility = "TEAM"
	VisibilityPrivate Visibility = "PRIVATE"
)

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityTeam, VisibilityPrivate:
		return true
	}
	return false
}

// ParseVisibility is case-insensitive and returns def for unknown input.
func ParseVisibility(s string, def Visibility) Visibility {
	v := Visibility(strings.ToUpper(strings.TrimSpace(s)))
	if v.IsValid() {
		return v
	}
	return def
}

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
	StatusDeleted   Status = "DELETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived, StatusDeleted:
		return true
	}
	return false
}

// ParseStatus is case-insensitive and returns def for unknown input.
func ParseStatus(s string, def Status) Status {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if st.IsValid() {
		return st
	}
	return def
}

type ActionType string

const (
	ActionCreate  ActionType = "CREATE"
	ActionEdit    ActionType = "EDIT"
	ActionPublish ActionType = "PUBLISH"
	ActionArchive ActionType = "ARCHIVE"
)

// ActionForStatus picks the version action recorded when an update moves a
// prompt into status.
func ActionForStatus(status Status) ActionType {
	switch status {
	case StatusPublished:
		return ActionPublish
	case StatusArchived:
		return ActionArchive
	default:
		return ActionEdit
	}
}

type SortType string

const (
	SortLatestModified SortType = "LATEST_MODIFIED"
	SortTitle          SortType = "TITLE"
	SortMostFavorite   SortType = "MOST_FAVORITE"
	SortMostViews      SortType = "MOST_VIEWS"
)

// ParseSortType falls back to SortLatestModified.
func ParseSortType(s string) SortType {
	switch st := SortType(strings.ToUpper(strings.TrimSpace(s))); st {
	case SortTitle, SortMostFavorite, SortMostViews, SortLatestModified:
		return st
	}
	return SortLatestModified
}
