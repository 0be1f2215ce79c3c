package upload

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// ErrNotFound is returned when no upload exists for a reference.
var ErrNotFound = errors.New("upload: file not found")

// ErrTooLarge is returned when a file exceeds the size limit.
var ErrTooLarge = errors.New("upload: file too large")

// Store is a staging backend for uploaded files. Implementations must be
// safe for concurrent use.
type Store interface {
	// Save stages the uploaded file and returns its reference.
	Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (ref string, err error)

	// Claim consumes a staged file. The reference is single-use: after a
	// successful claim the staged copy is removed.
	Claim(ctx context.Context, ref string) (*File, error)

	// Cleanup removes staged files older than maxAge. Call periodically.
	Cleanup(ctx context.Context, maxAge time.Duration) error
}

// File is a claimed upload.
type File struct {
	Ref         string
	Filename    string
	ContentType string
	Size        int64

	// Path is the local filesystem path (disk store).
	Path string

	// URL is a presigned remote URL (S3 store).
	URL string

	// Reader streams the file contents. Close it when done.
	Reader io.ReadCloser
}

// Close closes the file reader if open.
func (f *File) Close() error {
	if f.Reader != nil {
		return f.Reader.Close()
	}
	return nil
}

// Config holds upload handler configuration.
type Config struct {
	// MaxFileSize is the largest accepted file in bytes. Default: 10MB.
	MaxFileSize int64

	// FieldName is the multipart form field carrying the file.
	// Default: "file".
	FieldName string
}

// DefaultConfig returns a Config with the defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		MaxFileSize: 10 << 20,
		FieldName:   "file",
	}
}

// Handler returns the upload endpoint with default configuration.
// Mount it on the host router: r.Post("/upload", upload.Handler(store)).
//
// The endpoint expects a multipart form and answers with JSON:
//
//	{"ref": "9f8a..."}
//
// The client sets that reference as the file picker's value.
func Handler(store Store) http.Handler {
	return HandlerWithConfig(store, DefaultConfig())
}

// HandlerWithConfig returns the upload endpoint with custom configuration.
func HandlerWithConfig(store Store, config *Config) http.Handler {
	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	field := config.FieldName
	if field == "" {
		field = "file"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Bound the body before parsing anything.
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "malformed form", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile(field)
		if err != nil {
			http.Error(w, "no file provided", http.StatusBadRequest)
			return
		}
		defer file.Close()

		ref, err := store.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
		if err != nil {
			if errors.Is(err, ErrTooLarge) {
				http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "upload failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"ref": ref})
	})
}
