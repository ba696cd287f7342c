package database

import (
	"errors"

	"gorm.io/gorm"
)

// Store is the single handle handlers use to reach the database. It is
// passed in explicitly wherever it is needed; there is no package-level
// connection.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(user *User) error {
	return s.db.Create(user).Error
}

// UserByEmail returns (nil, nil) when no account matches, so callers can
// tell "no such user" apart from a failing store.
func (s *Store) UserByEmail(email string) (*User, error) {
	var user User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserByID(id uint) (*User, error) {
	var user User
	err := s.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// AllBlogPosts returns every post in insertion order.
func (s *Store) AllBlogPosts() ([]BlogPost, error) {
	var posts []BlogPost
	err := s.db.Find(&posts).Error
	return posts, err
}

// BlogPostByID fails with gorm.ErrRecordNotFound for a missing id; lookups
// by id are only made with ids the app itself handed out, so a miss is
// treated as an infrastructure failure, not a user error.
func (s *Store) BlogPostByID(id uint) (*BlogPost, error) {
	var post BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Store) CreateBlogPost(post *BlogPost) error {
	return s.db.Create(post).Error
}

func (s *Store) UpdateBlogPost(post *BlogPost) error {
	return s.db.Save(post).Error
}

// DeleteBlogPost removes a post together with its comments. The schema does
// not cascade on its own, so the dependent rows go first.
func (s *Store) DeleteBlogPost(id uint) error {
	if err := s.db.Where("post_id = ?", id).Delete(&Comment{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&BlogPost{}, id).Error
}

func (s *Store) CreateComment(comment *Comment) error {
	return s.db.Create(comment).Error
}

// CommentsForPost joins each comment with its commenter's email and name,
// oldest first.
func (s *Store) CommentsForPost(postID uint) ([]CommentWithAuthor, error) {
	var comments []CommentWithAuthor
	err := s.db.Table("comments").
		Select("comments.text, users.email, users.name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.id").
		Scan(&comments).Error
	return comments, err
}

// CommentCountForPost exists for tests and the post page footer.
func (s *Store) CommentCountForPost(postID uint) (int64, error) {
	var n int64
	err := s.db.Model(&Comment{}).Where("post_id = ?", postID).Count(&n).Error
	return n, err
}

// UserCount reports the number of registered accounts.
func (s *Store) UserCount() (int64, error) {
	var n int64
	err := s.db.Model(&User{}).Count(&n).Error
	return n, err
}
