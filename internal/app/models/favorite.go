package models

import "time"

// FavoriteCategory is a user-owned bucket of favorite contacts. Every user
// gets an "ALL" category at registration.
type FavoriteCategory struct {
	FavcatID  int64     `json:"favcat_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Phone     string    `json:"phone"`
}

// Favorite pins a contactable into a category.
type Favorite struct {
	CID      int64 `json:"cid"`
	FavcatID int64 `json:"favcat_id"`
}
