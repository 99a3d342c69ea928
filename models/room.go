package models

import "fmt"

// Room is a bookable room. Type and PricePerNight may change via upsert;
// bookings never see those changes because they keep their own snapshot.
type Room struct {
	ID            int      `json:"id"`
	Type          RoomType `json:"type"`
	PricePerNight int      `json:"pricePerNight"`
}

func (r Room) String() string {
	return fmt.Sprintf("Room %d (%s) - %d/night", r.ID, r.Type, r.PricePerNight)
}
