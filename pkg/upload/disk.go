package upload

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DiskStore stages uploads on the local filesystem. Metadata is kept in
// memory and mirrored to a sidecar file so staged uploads survive a
// restart.
type DiskStore struct {
	dir     string
	maxSize int64

	mu    sync.RWMutex
	files map[string]*diskMeta
}

type diskMeta struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewDiskStore creates a DiskStore rooted at dir. maxSize bounds a single
// file in bytes; zero means no limit.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{
		dir:     dir,
		maxSize: maxSize,
		files:   make(map[string]*diskMeta),
	}, nil
}

// Save stages the uploaded file and returns its reference.
func (s *DiskStore) Save(_ context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}

	ref := newRef()
	path := filepath.Join(s.dir, ref)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = r
	if s.maxSize > 0 {
		// One extra byte so an at-limit reader is distinguishable from an
		// over-limit one.
		reader = io.LimitReader(r, s.maxSize+1)
	}
	written, err := io.Copy(f, reader)
	if err != nil {
		os.Remove(path)
		return "", err
	}
	if s.maxSize > 0 && written > s.maxSize {
		os.Remove(path)
		return "", ErrTooLarge
	}

	meta := &diskMeta{
		Filename:    filename,
		ContentType: contentType,
		Size:        written,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.files[ref] = meta
	s.mu.Unlock()
	s.writeMeta(ref, meta)

	return ref, nil
}

// Claim consumes a staged file. The file and its metadata are removed when
// the returned reader is closed.
func (s *DiskStore) Claim(_ context.Context, ref string) (*File, error) {
	s.mu.Lock()
	meta, ok := s.files[ref]
	if ok {
		delete(s.files, ref)
	}
	s.mu.Unlock()

	if !ok {
		var err error
		if meta, err = s.readMeta(ref); err != nil {
			return nil, ErrNotFound
		}
	}

	path := filepath.Join(s.dir, ref)
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrNotFound
	}

	return &File{
		Ref:         ref,
		Filename:    meta.Filename,
		ContentType: meta.ContentType,
		Size:        meta.Size,
		Path:        path,
		Reader:      &removeOnClose{File: f, paths: []string{path, s.metaPath(ref)}},
	}, nil
}

// Cleanup removes staged files older than maxAge.
func (s *DiskStore) Cleanup(_ context.Context, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	for ref, meta := range s.files {
		if meta.CreatedAt.Before(cutoff) {
			delete(s.files, ref)
			os.Remove(filepath.Join(s.dir, ref))
			os.Remove(s.metaPath(ref))
		}
	}
	s.mu.Unlock()

	// Orphans from a previous process.
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(s.dir, entry.Name()))
		}
	}
	return nil
}

func (s *DiskStore) metaPath(ref string) string {
	return filepath.Join(s.dir, ref+".meta")
}

func (s *DiskStore) writeMeta(ref string, meta *diskMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(s.metaPath(ref), data, 0o644)
}

func (s *DiskStore) readMeta(ref string) (*diskMeta, error) {
	data, err := os.ReadFile(s.metaPath(ref))
	if err != nil {
		return nil, err
	}
	var meta diskMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// newRef returns a cryptographically random upload reference.
func newRef() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// removeOnClose deletes the staged files once the consumer is done.
type removeOnClose struct {
	*os.File
	paths []string
}

func (r *removeOnClose) Close() error {
	err := r.File.Close()
	for _, p := range r.paths {
		os.Remove(p)
	}
	return err
}
