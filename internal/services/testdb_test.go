package services

import (
	"fmt"
	"testing"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database with the real migrations
// applied. Each test gets its own database, keyed by the test name.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := db.InitWithDialector(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{Username: username, Password: "x"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

func createPost(t *testing.T, gdb *gorm.DB, authorID uint, title, body string) *models.Post {
	t.Helper()

	post := models.Post{AuthorID: authorID, Title: title, Body: body}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("failed to create post %q: %v", title, err)
	}
	return &post
}

// pairVoteRows counts vote rows of both kinds for a (user, post) pair.
func pairVoteRows(t *testing.T, gdb *gorm.DB, userID, postID uint) (ups int64, downs int64) {
	t.Helper()

	if err := gdb.Model(&models.Upvote{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&ups).Error; err != nil {
		t.Fatalf("failed to count upvotes: %v", err)
	}
	if err := gdb.Model(&models.Downvote{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&downs).Error; err != nil {
		t.Fatalf("failed to count downvotes: %v", err)
	}
	return ups, downs
}
