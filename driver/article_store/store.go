package article_store

import (
	"sync"

	"newslens/domain"
)

// DefaultCapacity bounds the store when the configured capacity is zero.
const DefaultCapacity = 150

// Store is the process-local article collection: unique by link, newest
// first, bounded in size. Ingestion can be triggered concurrently by the
// refresh endpoint and the background job, so every access goes through the
// lock. Reads hand out copies of the stored articles; the pointers held
// inside the store never escape, so Update cannot race a reader.
type Store struct {
	mu       sync.RWMutex
	articles []*domain.Article
	byLink   map[string]*domain.Article
	byID     map[string]*domain.Article
	capacity int
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		byLink:   make(map[string]*domain.Article),
		byID:     make(map[string]*domain.Article),
		capacity: capacity,
	}
}

// Add inserts a copy of the article at the head of the collection and reports
// whether it was inserted. Articles sharing a link with an existing entry are
// silently dropped. When the insertion pushes the store over capacity the
// oldest entries are evicted.
func (s *Store) Add(article *domain.Article) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byLink[article.Link]; exists {
		return false
	}

	stored := article.Clone()
	s.articles = append([]*domain.Article{&stored}, s.articles...)
	s.byLink[stored.Link] = &stored
	s.byID[stored.ID] = &stored

	for len(s.articles) > s.capacity {
		evicted := s.articles[len(s.articles)-1]
		s.articles = s.articles[:len(s.articles)-1]
		delete(s.byLink, evicted.Link)
		delete(s.byID, evicted.ID)
	}

	return true
}

// List returns a snapshot of the collection, newest first. Every element is
// a copy, so callers can read it without holding the lock.
func (s *Store) List() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Article, len(s.articles))
	for i, article := range s.articles {
		out[i] = article.Clone()
	}
	return out
}

// GetByID returns a copy of the article with the given id, or
// ErrArticleNotFound.
func (s *Store) GetByID(id string) (domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.byID[id]
	if !ok {
		return domain.Article{}, domain.ErrArticleNotFound
	}
	return article.Clone(), nil
}

// ContainsLink reports whether an article with the given link is stored.
func (s *Store) ContainsLink(link string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byLink[link]
	return ok
}

// Update applies mutate to the article with the given id under the store
// lock and returns a copy of the mutated article. Used by the analysis flow
// to publish results without racing concurrent readers.
func (s *Store) Update(id string, mutate func(*domain.Article)) (domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.byID[id]
	if !ok {
		return domain.Article{}, domain.ErrArticleNotFound
	}
	mutate(article)
	return article.Clone(), nil
}

// Count returns the number of stored articles.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.articles)
}
