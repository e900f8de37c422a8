package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseStringToUUID parses s, returning uuid.Nil on any failure.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// IsValidUUID reports whether u looks like a canonical UUID.
func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil && len(u) == 36
}

// DisplayNameFromEmail derives a display name from the local part of an
// email address, used when a user record is created lazily.
func DisplayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
