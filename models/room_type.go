package models

// RoomType is the pricing/category tier of a room.
type RoomType string

const (
	StandardSuite RoomType = "STANDARD_SUITE"
	JuniorSuite   RoomType = "JUNIOR_SUITE"
	MasterSuite   RoomType = "MASTER_SUITE"
)

// Valid reports whether t is one of the known tiers.
func (t RoomType) Valid() bool {
	switch t {
	case StandardSuite, JuniorSuite, MasterSuite:
		return true
	}
	return false
}
