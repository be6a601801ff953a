package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		id   *Identity
		want string
	}{
		{name: "nil", id: nil, want: ""},
		{name: "name wins", id: &Identity{Name: "Ana", FirstName: "A", Email: "a@b.c"}, want: "Ana"},
		{name: "split name", id: &Identity{FirstName: "Ana", LastName: "Ruiz", Email: "a@b.c"}, want: "Ana Ruiz"},
		{name: "email fallback", id: &Identity{Email: "a@b.c"}, want: "a@b.c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.DisplayName())
		})
	}
}

func TestIdentity_Valid(t *testing.T) {
	assert.False(t, (*Identity)(nil).Valid())
	assert.False(t, (&Identity{ID: " ", Email: "a@b.c"}).Valid())
	assert.False(t, (&Identity{ID: "1"}).Valid())
	assert.True(t, (&Identity{ID: "1", Email: "a@b.c"}).Valid())
}

func TestIdentity_CloneIsDeep(t *testing.T) {
	orig := &Identity{
		ID:    "1",
		Email: "a@b.c",
		Preferences: &Preferences{
			Allergies: []string{"nuts"},
		},
	}

	c := orig.Clone()
	c.Preferences.Allergies[0] = "gluten"
	c.Email = "x@y.z"

	assert.Equal(t, "nuts", orig.Preferences.Allergies[0])
	assert.Equal(t, "a@b.c", orig.Email)
	assert.Nil(t, (*Identity)(nil).Clone())
}

func TestAuthResponse_Access(t *testing.T) {
	assert.Equal(t, "a", AuthResponse{AccessToken: "a", Token: "b"}.Access())
	assert.Equal(t, "b", AuthResponse{Token: "b"}.Access())
	assert.Empty(t, AuthResponse{}.Access())
}
