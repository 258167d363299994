package domain

import "time"

type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Shares    int       `json:"shares"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWithAuthor - пост с данными автора (для ленты и бродкастов)
type PostWithAuthor struct {
	Post
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image,omitempty"`
}
