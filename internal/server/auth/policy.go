package auth

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mkravets/tasktrack/internal/common"
)

// specialChars is the set of characters accepted as "special" by the
// password policy.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// Policy describes the password rules enforced at registration and password
// change. Each character-class requirement toggles independently.
type Policy struct {
	MinLength      int
	RequireUpper   bool
	RequireDigit   bool
	RequireSpecial bool
}

// Validate checks plaintext against the policy and returns ErrWeakPassword
// (wrapped with the first violated rule) or nil.
func (p Policy) Validate(plaintext string) error {
	if len(plaintext) < p.MinLength {
		return fmt.Errorf("%w: at least %d characters required", common.ErrWeakPassword, p.MinLength)
	}

	if p.RequireUpper && !strings.ContainsFunc(plaintext, unicode.IsUpper) {
		return fmt.Errorf("%w: an uppercase letter is required", common.ErrWeakPassword)
	}

	if p.RequireDigit && !strings.ContainsFunc(plaintext, unicode.IsDigit) {
		return fmt.Errorf("%w: a digit is required", common.ErrWeakPassword)
	}

	if p.RequireSpecial && !strings.ContainsAny(plaintext, specialChars) {
		return fmt.Errorf("%w: a special character is required", common.ErrWeakPassword)
	}

	return nil
}
