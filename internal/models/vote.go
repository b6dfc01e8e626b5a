package models

import (
	"time"
)

// Upvote and Downvote are kept as two disjoint tables rather than one signed
// value column. The composite unique index on each table means the database
// itself rejects a duplicate vote of the same kind; the cross-table
// exclusivity is enforced by the vote service transaction.

type Upvote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_upvote_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_upvote_user_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Downvote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_downvote_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_downvote_user_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
