package services

import (
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteService keeps at most one active vote per (user, post) pair across the
// two vote kinds. Switching kinds is delete-then-insert of the opposite kind,
// never an update in place, and there is no way back to "no vote" once voted.
type VoteService struct {
	db *gorm.DB
}

func NewVoteService(gdb *gorm.DB) *VoteService {
	return &VoteService{db: gdb}
}

// CastUpvote records an upvote by userID on postID. Any downvote by the same
// user on the same post is removed in the same transaction. Casting an upvote
// that already exists is a no-op.
func (s *VoteService) CastUpvote(userID, postID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockPost(tx, postID); err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Downvote{}).Error; err != nil {
			return err
		}

		var existing models.Upvote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error
		if err == nil {
			// Already upvoted
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&models.Upvote{UserID: userID, PostID: postID}).Error
	})
}

// CastDownvote is the mirror of CastUpvote.
func (s *VoteService) CastDownvote(userID, postID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockPost(tx, postID); err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Upvote{}).Error; err != nil {
			return err
		}

		var existing models.Downvote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&models.Downvote{UserID: userID, PostID: postID}).Error
	})
}

// Counts returns the number of upvotes and downvotes on a post.
func (s *VoteService) Counts(postID uint) (upvotes int64, downvotes int64, err error) {
	if err = s.db.Model(&models.Upvote{}).
		Where("post_id = ?", postID).Count(&upvotes).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.Model(&models.Downvote{}).
		Where("post_id = ?", postID).Count(&downvotes).Error; err != nil {
		return 0, 0, err
	}
	return upvotes, downvotes, nil
}

// lockPost verifies the post exists and takes a row lock on it for the rest
// of the transaction, serializing concurrent casts for the same post. Without
// the lock, two opposite-kind casts under READ COMMITTED can each miss the
// other's uncommitted row, and both insert. SQLite has no row locks; its
// dialector drops the clause and its single-writer transactions serialize
// anyway.
func lockPost(tx *gorm.DB, postID uint) error {
	var post models.Post
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
