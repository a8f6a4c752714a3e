package store

import (
	"sync"

	"posts-api/pkg/models"
)

// UpdatePost carries the mutable fields of a post. Empty values are
// treated as "not supplied" and leave the stored field unchanged.
type UpdatePost struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Actress     string `json:"actress"`
}

// PostStore holds all posts in insertion order for the lifetime of the
// process. A single mutex serializes access so concurrent requests never
// observe a half-applied update or delete.
type PostStore struct {
	mu    sync.Mutex
	posts []models.Post
}

func NewPostStore() *PostStore {
	return &PostStore{}
}

// Insert appends the post. IDs are not checked for uniqueness; lookups
// return the first match.
func (s *PostStore) Insert(p models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, p)
}

// All returns every post in insertion order.
func (s *PostStore) All() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Get looks up a post by exact string id.
func (s *PostStore) Get(id string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Update overwrites title, description and actress where a non-empty
// replacement was supplied. ID, image and video are never touched.
func (s *PostStore) Update(id string, upd UpdatePost) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if upd.Title != "" {
			s.posts[i].Title = upd.Title
		}
		if upd.Description != "" {
			s.posts[i].Description = upd.Description
		}
		if upd.Actress != "" {
			s.posts[i].Actress = upd.Actress
		}
		return s.posts[i], true
	}
	return models.Post{}, false
}

// Delete removes the first post matching id, preserving the order of the
// remaining posts.
func (s *PostStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}
