package usecase

import (
	"strings"
	"unicode"
)

// ValidateUsername accepts 3 to 32 letters, digits and underscores.
func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 32 {
		return false
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// ValidateEmail performs a light structural check, real verification happens
// through the notification channel.
func ValidateEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	if strings.ContainsAny(email, " \t") {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// ValidateWalletAddress accepts any non-blank destination. Address formats
// vary per chain, admins inspect them during manual payout review.
func ValidateWalletAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}
