package models

import (
	"time"
)

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name" db:"name"`
	Age          int    `json:"age" db:"age"`
	Nickname     string `json:"nickname" db:"nickname"`
	ProfileImage string `json:"profileImage" db:"profile_image"`
}

type Work struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Content     string `json:"content" db:"content"`
	Category    string `json:"category" db:"category"`
	Image       string `json:"image" db:"image"`
	Description string `json:"description" db:"description"`
	AuthorID    int64  `json:"authorId" db:"author_id"`
	AuthorName  string `json:"authorName" db:"author_name"`
	Likes       int    `json:"likes" db:"likes"`
	Views       int    `json:"views" db:"views"`
}

type Episode struct {
	ID            int64     `json:"id" db:"id"`
	WorkID        int64     `json:"workId" db:"work_id"`
	EpisodeNumber int       `json:"episodeNumber" db:"episode_number"`
	Content       string    `json:"content" db:"content"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Comment is the joined form surfaced inside a work detail: the commenter's
// nickname is pulled in by the query.
type Comment struct {
	CommentID      int64     `json:"commentId" db:"comment_id"`
	AuthorNickname string    `json:"authorNickname" db:"author_nickname"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type EpisodeDetail struct {
	Episode
	Comments []Comment `json:"comments" db:"-"`
}

type WorkDetail struct {
	Work
	Episodes []EpisodeDetail `json:"episodes" db:"-"`
}

type Profile struct {
	Username     string `json:"username" db:"username"`
	Name         string `json:"name" db:"name"`
	Age          int    `json:"age" db:"age"`
	ProfileImage string `json:"profileImage" db:"profile_image"`
}

// WorkSummary is the card shape used by the recent-views and liked-works lists.
type WorkSummary struct {
	ID         int64  `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	Image      string `json:"image" db:"image"`
	AuthorName string `json:"authorName" db:"author_name"`
}

type OwnWork struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Image       string `json:"image" db:"image"`
	Description string `json:"description" db:"description"`
	Likes       int    `json:"likes" db:"likes"`
}

type Dashboard struct {
	Profile     Profile       `json:"profile"`
	RecentViews []WorkSummary `json:"recentViews"`
	MyWorks     []OwnWork     `json:"myWorks"`
	LikedWorks  []WorkSummary `json:"likedWorks"`
}

type AuthorWork struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Likes       int    `json:"likes" db:"likes"`
	Description string `json:"description" db:"description"`
	CoverImage  string `json:"coverImage" db:"cover_image"`
}

type AuthorWorks struct {
	AuthorName string       `json:"authorName"`
	Works      []AuthorWork `json:"works"`
}
