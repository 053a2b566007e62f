package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/midnamic912/Midna-Blog/constants"
)

var (
	ErrEmptyComment = errors.New("comment text cannot be empty")
	ErrLongComment  = fmt.Errorf("comment text cannot exceed %d characters", constants.MAX_COMMENT_LENGTH)
)

// CreateComment inserts a comment. Both the author and the parent post must
// exist at write time.
func (s *Store) CreateComment(text string, authorID, postID uint) (*Comment, error) {
	if text == "" {
		return nil, ErrEmptyComment
	}
	if len(text) > constants.MAX_COMMENT_LENGTH {
		return nil, ErrLongComment
	}

	comment := Comment{
		Text:     text,
		AuthorID: authorID,
		PostID:   postID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&User{}, authorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := tx.First(&BlogPost{}, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (s *Store) CommentsForPost(postID uint) ([]Comment, error) {
	var comments []Comment
	result := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}
