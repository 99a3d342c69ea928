package models

import (
	"fmt"
	"time"
)

// User is an account holder with a spendable balance. CreatedAt is set once
// on first upsert and never changes afterwards.
type User struct {
	ID        int       `json:"id"`
	Balance   int       `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) String() string {
	return fmt.Sprintf("User ID: %d, Balance: %d, Created: %s",
		u.ID, u.Balance, u.CreatedAt.Format(DateLayout))
}
