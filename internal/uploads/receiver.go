// Package uploads accepts incoming course-material files, enforces the
// PDF-only policy and gives every upload a collision-free stored name.
package uploads

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/studyhub-dev/studyhub/internal/storage"
)

var ErrUnsupportedFileType = errors.New("only PDFs are allowed")

// StoredFile describes where an accepted upload ended up. Name is unique
// per upload; Path is where clients can fetch the bytes from.
type StoredFile struct {
	Name string
	Path string
}

type Receiver struct {
	blobs storage.BlobStorage
}

func NewReceiver(blobs storage.BlobStorage) *Receiver {
	return &Receiver{blobs: blobs}
}

// Receive validates the original filename against the PDF policy, derives a
// unique stored name and persists the bytes. Concurrent uploads sharing an
// original name cannot overwrite one another: the uuid prefix keeps stored
// names distinct.
func (rcv *Receiver) Receive(ctx context.Context, originalName string, r io.Reader) (*StoredFile, error) {
	base := filepath.Base(originalName)
	ext := strings.ToLower(filepath.Ext(base))
	if ext != ".pdf" {
		return nil, ErrUnsupportedFileType
	}

	name := uuid.New().String() + "_" + base
	path, err := rcv.blobs.Save(ctx, name, r)
	if err != nil {
		return nil, err
	}
	return &StoredFile{Name: name, Path: path}, nil
}

// Discard removes a stored upload whose metadata record failed to persist,
// so a half-completed upload leaves no orphaned file behind.
func (rcv *Receiver) Discard(ctx context.Context, name string) error {
	return rcv.blobs.Remove(ctx, name)
}
