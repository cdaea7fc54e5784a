// model/article.go
package model

import (
	"strings"
	"time"
)

// Words-per-minute rate used to derive an article's reading time.
const readingRate = 200

type Article struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Content     string    `json:"content" bson:"content"`
	Published   bool      `json:"published" bson:"published"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	Likes       int       `json:"likes" bson:"likes"`
	Author      string    `json:"author" bson:"author"`
	ReadingTime int       `json:"readingTime" bson:"readingTime"`
}

// TrendingArticle is the single promoted-article record. It is replaced
// wholesale on each promotion; no history is kept.
type TrendingArticle struct {
	Title   string `json:"title" bson:"title"`
	Summary string `json:"summary" bson:"summary"`
}

// ReadingTime derives the reading time in minutes from the content word
// count, rounded up, never less than 1.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + readingRate - 1) / readingRate
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
