package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

func TestCanCreate(t *testing.T) {
	available := &item.Item{ID: 1, OwnerID: 1, Available: true}
	unavailable := &item.Item{ID: 2, OwnerID: 1, Available: false}

	assert.True(t, CanCreate(2, available))
	assert.False(t, CanCreate(1, available), "owner cannot book own item")
	assert.False(t, CanCreate(2, unavailable))
	assert.False(t, CanCreate(1, unavailable))
}

func TestCanApprove(t *testing.T) {
	b := &Booking{Item: item.Item{OwnerID: 1}, Booker: user.User{ID: 2}, Status: StatusWaiting}

	assert.True(t, CanApprove(1, b))
	assert.False(t, CanApprove(2, b), "booker cannot approve")
	assert.False(t, CanApprove(3, b))

	b.Status = StatusApproved
	assert.False(t, CanApprove(1, b))
}

func TestCanView(t *testing.T) {
	b := &Booking{Item: item.Item{OwnerID: 1}, Booker: user.User{ID: 2}}

	assert.True(t, CanView(1, b))
	assert.True(t, CanView(2, b))
	assert.False(t, CanView(3, b))
}
