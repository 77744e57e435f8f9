package booking

import "github.com/nekogravitycat/shareit-backend/internal/item"

// CanCreate reports whether actorID may book it. Owners cannot book their own items.
func CanCreate(actorID int64, it *item.Item) bool {
	return it.Available && it.OwnerID != actorID
}

// CanApprove reports whether actorID may decide on b.
func CanApprove(actorID int64, b *Booking) bool {
	return b.Item.OwnerID == actorID && b.Status == StatusWaiting
}

// CanView reports whether actorID takes part in b as booker or item owner.
func CanView(actorID int64, b *Booking) bool {
	return b.Booker.ID == actorID || b.Item.OwnerID == actorID
}
