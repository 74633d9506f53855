package entities

import "time"

type NewsArticle struct {
	ArticleID   uint      `gorm:"primaryKey" json:"article_id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Category    string    `gorm:"index" json:"category"`
	SourceURL   string    `gorm:"uniqueIndex" json:"source_url"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time
}
