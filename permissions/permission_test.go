package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fairanova/2026-room-booking-backend/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	t.Run("finds a configured endpoint", func(t *testing.T) {
		permission := data.FindPermissions("/v1/bookings/{id}/status", "PUT")

		assert.Equal(t, []string{"staff", "admin"}, permission.Roles)
		assert.False(t, permission.Skip)
	})

	t.Run("room management is admin only", func(t *testing.T) {
		permission := data.FindPermissions("/v1/rooms/", "POST")

		assert.Equal(t, []string{"admin"}, permission.Roles)
	})

	t.Run("health check skips auth", func(t *testing.T) {
		permission := data.FindPermissions("/health", "GET")

		assert.True(t, permission.Skip)
	})

	t.Run("unknown endpoint yields a zero permission", func(t *testing.T) {
		permission := data.FindPermissions("/v1/unknown", "GET")

		assert.Empty(t, permission.Roles)
		assert.False(t, permission.Skip)
	})
}
