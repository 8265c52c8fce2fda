package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corporoom/taskhub/internal/apperr"
)

func TestValidateEmailDomain(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"allowed domain", "dev@corporoom.io", false},
		{"restricted domain", "dev@mail.ru", true},
		{"restricted domain uppercase", "dev@MAIL.RU", true},
		{"missing at sign", "not-an-email", true},
		{"subdomain of restricted is allowed", "dev@sub.mail.ru", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmailDomain(tt.email, DefaultRestrictedDomains)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "email", ve.Field)
		})
	}
}
