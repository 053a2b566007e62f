package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrDuplicateTitle = errors.New("a post with this title already exists")
	ErrPostNotFound   = errors.New("post not found")
)

// CreatePost inserts a new post. The title must be unique and the author
// must exist.
func (s *Store) CreatePost(post *BlogPost) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&BlogPost{}).Where("title = ?", post.Title).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check title uniqueness: %w", err)
		}
		if count > 0 {
			return ErrDuplicateTitle
		}

		if err := tx.First(&User{}, post.AuthorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		return tx.Create(post).Error
	})
}

// GetPost loads a post together with its author and its comments (comment
// authors included, oldest first).
func (s *Store) GetPost(id uint) (*BlogPost, error) {
	var post BlogPost
	result := s.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, result.Error
	}
	return &post, nil
}

func (s *Store) ListPosts() ([]BlogPost, error) {
	var posts []BlogPost
	result := s.db.Preload("Author").Order("id ASC").Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// UpdatePost saves new field values for an existing post. The title stays
// unique across all other posts.
func (s *Store) UpdatePost(post *BlogPost) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&BlogPost{}).
			Where("title = ? AND id <> ?", post.Title, post.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check title uniqueness: %w", err)
		}
		if count > 0 {
			return ErrDuplicateTitle
		}
		return tx.Save(post).Error
	})
}

// DeletePost removes a post and all of its comments in one transaction.
func (s *Store) DeletePost(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post BlogPost
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := tx.Where("post_id = ?", post.ID).Delete(&Comment{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments of post %d: %w", post.ID, err)
		}

		return tx.Delete(&post).Error
	})
}
