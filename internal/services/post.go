package services

import (
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostService covers post CRUD, the aggregate listing query and author-only
// authorization.
type PostService struct {
	db *gorm.DB
}

func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// List returns all posts newest first, with their author and vote counts
// filled in. No pagination.
func (s *PostService) List() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("Author").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}

	if err := s.fillVoteCounts(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// fillVoteCounts batch-counts votes of both kinds for the given posts.
func (s *PostService) fillVoteCounts(posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int64
	}

	var upResults []countResult
	if err := s.db.Model(&models.Upvote{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&upResults).Error; err != nil {
		return err
	}

	var downResults []countResult
	if err := s.db.Model(&models.Downvote{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&downResults).Error; err != nil {
		return err
	}

	upMap := make(map[uint]int64, len(upResults))
	for _, r := range upResults {
		upMap[r.PostID] = r.Count
	}
	downMap := make(map[uint]int64, len(downResults))
	for _, r := range downResults {
		downMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].UpvoteCount = upMap[posts[i].ID]
		posts[i].DownvoteCount = downMap[posts[i].ID]
	}
	return nil
}

// Create inserts a new post by authorID. The title must be non-empty; the
// body may be empty.
func (s *PostService) Create(authorID uint, title, body string) (*models.Post, error) {
	if title == "" {
		return nil, &ValidationError{Message: "Title is required."}
	}

	post := models.Post{
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Get fetches a post with its author. When requireAuthorMatch is set the
// post must belong to currentUserID, otherwise ErrNotPostAuthor is returned.
func (s *PostService) Get(id uint, requireAuthorMatch bool, currentUserID uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if requireAuthorMatch && post.AuthorID != currentUserID {
		return nil, ErrNotPostAuthor
	}
	return &post, nil
}

// Update overwrites title and body of a post owned by currentUserID. The
// created timestamp and the author never change.
func (s *PostService) Update(id, currentUserID uint, title, body string) error {
	post, err := s.Get(id, true, currentUserID)
	if err != nil {
		return err
	}

	if title == "" {
		return &ValidationError{Message: "Title is required."}
	}

	return s.db.Model(post).Updates(map[string]interface{}{
		"title": title,
		"body":  body,
	}).Error
}

// Delete removes a post owned by currentUserID together with its vote rows.
func (s *PostService) Delete(id, currentUserID uint) error {
	post, err := s.Get(id, true, currentUserID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Upvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Downvote{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}
