package database

// User is created at registration and never mutated or deleted afterwards.
// The account with ID 1 (the first ever registered) is the blog owner.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // salted pbkdf2 hash, never plaintext
	Name     string `gorm:"not null"`
}

type BlogPost struct {
	ID       uint   `gorm:"primaryKey"`
	AuthorID uint   `gorm:"index;not null"`
	Title    string `gorm:"uniqueIndex;not null"`
	Subtitle string `gorm:"not null"`
	// Stamped as "Month DD, YYYY" at creation and never recomputed.
	Date   string `gorm:"not null"`
	Body   string `gorm:"type:text;not null"`
	ImgURL string `gorm:"not null"`
}

type Comment struct {
	ID     uint   `gorm:"primaryKey"`
	Text   string `gorm:"type:text;not null"`
	PostID uint   `gorm:"index"`
	UserID uint   `gorm:"index"`
}

// CommentWithAuthor is the comment row joined with its commenter, as the
// post page needs it for display and avatar resolution.
type CommentWithAuthor struct {
	Text  string
	Email string
	Name  string
}
