package store

import (
	"testing"

	"posts-api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewPostStore()
	s.Insert(models.Post{ID: "1", Title: "A"})
	s.Insert(models.Post{ID: "2", Title: "B"})
	s.Insert(models.Post{ID: "3", Title: "C"})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Title)
	assert.Equal(t, "B", all[1].Title)
	assert.Equal(t, "C", all[2].Title)
}

func TestGetMatchesExactString(t *testing.T) {
	s := NewPostStore()
	s.Insert(models.Post{ID: "5", Title: "five"})

	post, ok := s.Get("5")
	require.True(t, ok)
	assert.Equal(t, "five", post.Title)

	_, ok = s.Get("05")
	assert.False(t, ok, "ids compare as strings, not numbers")

	_, ok = s.Get("6")
	assert.False(t, ok)
}

func TestDuplicateIDsReturnFirstMatch(t *testing.T) {
	s := NewPostStore()
	s.Insert(models.Post{ID: "7", Title: "first"})
	s.Insert(models.Post{ID: "7", Title: "second"})

	post, ok := s.Get("7")
	require.True(t, ok)
	assert.Equal(t, "first", post.Title)
}

func TestUpdateCoalescesOnNonEmpty(t *testing.T) {
	s := NewPostStore()
	s.Insert(models.Post{ID: "1", Title: "A", Description: "B", Actress: "X"})

	post, ok := s.Update("1", UpdatePost{Title: "C"})
	require.True(t, ok)
	assert.Equal(t, "C", post.Title)
	assert.Equal(t, "B", post.Description, "unsupplied field stays unchanged")
	assert.Equal(t, "X", post.Actress)

	post, ok = s.Update("1", UpdatePost{Title: ""})
	require.True(t, ok)
	assert.Equal(t, "C", post.Title, "empty string must not clear the field")
}

func TestUpdateNeverTouchesMediaOrID(t *testing.T) {
	s := NewPostStore()
	s.Insert(models.Post{ID: "1", Image: "/uploads/images/a.png", Video: "/uploads/videos/b.mp4"})

	post, ok := s.Update("1", UpdatePost{Title: "new"})
	require.True(t, ok)
	assert.Equal(t, "1", post.ID)
	assert.Equal(t, "/uploads/images/a.png", post.Image)
	assert.Equal(t, "/uploads/videos/b.mp4", post.Video)
}

func TestUpdateMissingID(t *testing.T) {
	s := NewPostStore()
	_, ok := s.Update("99", UpdatePost{Title: "x"})
	assert.False(t, ok)
}

func TestDeletePreservesOrderAndIsIdempotentOnMiss(t *testing.T) {
	s := NewPostStore()
	s.Insert(models.Post{ID: "1"})
	s.Insert(models.Post{ID: "2"})
	s.Insert(models.Post{ID: "3"})

	require.True(t, s.Delete("2"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[1].ID)

	assert.False(t, s.Delete("2"), "second delete reports not found")
	assert.Len(t, s.All(), 2)
}

func TestAllReturnsEmptySliceNotNil(t *testing.T) {
	s := NewPostStore()
	all := s.All()
	assert.NotNil(t, all)
	assert.Len(t, all, 0)
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewPostStore()
	s.Insert(models.Post{ID: "1", Title: "A"})

	all := s.All()
	all[0].Title = "mutated"

	post, _ := s.Get("1")
	assert.Equal(t, "A", post.Title)
}
