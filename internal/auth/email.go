package auth

import (
	"fmt"
	"strings"

	"github.com/corporoom/taskhub/internal/apperr"
)

// DefaultRestrictedDomains lists email providers we refuse registrations from
var DefaultRestrictedDomains = []string{"mail.ru"}

// ValidateEmailDomain rejects addresses whose domain is on the restricted
// list. The comparison is case-insensitive.
func ValidateEmailDomain(email string, restricted []string) error {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return apperr.NewFieldValidation("email", "invalid email address")
	}

	domain := strings.ToLower(email[at+1:])
	for _, blocked := range restricted {
		if domain == strings.ToLower(blocked) {
			return apperr.NewFieldValidation(
				"email",
				fmt.Sprintf("Registration using %q is not allowed.", domain),
			)
		}
	}
	return nil
}
