package repository

import "agribot/entities"

type NewsRepository interface {
	Upsert(a *entities.NewsArticle) error
	List(category, query string, limit int) ([]entities.NewsArticle, error)
}
