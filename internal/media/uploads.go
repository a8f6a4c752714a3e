package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes uploaded files under a root directory, split into images/
// and videos/ by declared content type.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Save writes the uploaded part to disk and returns its public path under
// /uploads. No validation of the file bytes is performed; any content type
// not declaring itself a video is filed as an image.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	subdir := "images"
	if strings.HasPrefix(fh.Header.Get("Content-Type"), "video") {
		subdir = "videos"
	}

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%d%s", uuid.NewString(), time.Now().UnixMilli(), filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "/uploads/" + subdir + "/" + name, nil
}
