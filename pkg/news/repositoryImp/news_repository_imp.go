package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agribot/entities"
	"agribot/pkg/news/repository"
)

type newsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NewsRepository { return &newsRepo{db} }

// Upsert keys on source_url so re-scraping a feed refreshes instead of
// duplicating.
func (r *newsRepo) Upsert(a *entities.NewsArticle) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_url"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "summary", "category", "published_at"}),
	}).Create(a).Error
}

func (r *newsRepo) List(category, query string, limit int) ([]entities.NewsArticle, error) {
	if limit <= 0 {
		limit = 50
	}
	q := r.db.Order("published_at DESC").Limit(limit)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("title LIKE ? OR summary LIKE ?", like, like)
	}
	var out []entities.NewsArticle
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
