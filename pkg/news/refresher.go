package news

import (
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"agribot/pkg/news/repository"
)

// Source is one page to scrape, tagged with the category it lands under.
type Source struct {
	Category string
	URL      string
}

// ParseSources reads the NEWS_SOURCES env format:
// "category|url,category|url". Entries without a category default to
// "general".
func ParseSources(raw string) []Source {
	var out []Source
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		cat, url := "general", item
		if i := strings.Index(item, "|"); i >= 0 {
			cat, url = strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+1:])
		}
		if url == "" {
			continue
		}
		out = append(out, Source{Category: cat, URL: url})
	}
	return out
}

// Refresher re-scrapes the configured sources on a cron schedule.
type Refresher struct {
	repo    repository.NewsRepository
	sources []Source
	cron    *cron.Cron
}

func NewRefresher(repo repository.NewsRepository, sources []Source) *Refresher {
	return &Refresher{repo: repo, sources: sources, cron: cron.New()}
}

// RefreshOnce scrapes every source, returning how many articles landed.
// Per-source failures are logged and skipped; one dead feed must not stall
// the rest.
func (r *Refresher) RefreshOnce() int {
	n := 0
	for _, src := range r.sources {
		a, err := FetchArticle(src.URL, src.Category)
		if err != nil {
			log.Printf("[news] %v", err)
			continue
		}
		if err := r.repo.Upsert(a); err != nil {
			log.Printf("[news] upsert %s: %v", src.URL, err)
			continue
		}
		n++
	}
	return n
}

// Start schedules periodic refreshes (cron spec, e.g. "@hourly") and kicks
// off an immediate first pass in the background.
func (r *Refresher) Start(spec string) error {
	if len(r.sources) == 0 {
		log.Printf("[news] no sources configured, refresher idle")
		return nil
	}
	if _, err := r.cron.AddFunc(spec, func() { r.RefreshOnce() }); err != nil {
		return err
	}
	r.cron.Start()
	go r.RefreshOnce()
	return nil
}

func (r *Refresher) Stop() { r.cron.Stop() }
