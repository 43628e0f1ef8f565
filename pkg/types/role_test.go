package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Role
		wantErr bool
	}{
		{name: "owner", token: "owner", want: RoleOwner},
		{name: "buyer", token: "buyer", want: RoleBuyer},
		{name: "seller", token: "seller", want: RoleSeller},
		{name: "case insensitive", token: "BUYER", want: RoleBuyer},
		{name: "surrounding whitespace", token: " seller ", want: RoleSeller},
		{name: "unknown token", token: "tenant", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ParseRole(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRole)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, role)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleBuyer.Valid())
	assert.True(t, RoleSeller.Valid())
	assert.False(t, Role("tenant").Valid())
	assert.False(t, Role("").Valid())
}
