package models

import (
	"strings"
	"time"

	"github.com/mssola/useragent"

	id "promptserver/pkg/domain"
)

type LoginStatus string

const (
	LoginStatusSuccess LoginStatus = "SUCCESS"
	LoginStatusFailed  LoginStatus = "FAILED"
)

const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceBot     = "Bot"
	unknown       = "Unknown"
)

// LoginHistory is one login attempt by a known user.
type LoginHistory struct {
	ID        int64
	UserID    id.UserID
	LoginAt   time.Time
	IP        string
	UserAgent string
	Browser   string
	OS        string
	Device    string
	Status    LoginStatus
}

// NewLoginHistory parses the raw User-Agent into browser, OS and device class.
func NewLoginHistory(userID id.UserID, ip, rawUA string, status LoginStatus, now time.Time) *LoginHistory {
	h := &LoginHistory{
		UserID:    userID,
		LoginAt:   now,
		IP:        ip,
		UserAgent: rawUA,
		Browser:   unknown,
		OS:        unknown,
		Device:    unknown,
		Status:    status,
	}
	if strings.TrimSpace(rawUA) == "" {
		return h
	}

	ua := useragent.New(rawUA)
	if name, version := ua.Browser(); name != "" {
		h.Browser = strings.TrimSpace(name + " " + version)
	}
	if osName := ua.OS(); osName != "" {
		h.OS = osName
	}
	switch {
	case ua.Bot():
		h.Device = DeviceBot
	case ua.Mobile():
		h.Device = DeviceMobile
	default:
		h.Device = DeviceDesktop
	}
	return h
}
