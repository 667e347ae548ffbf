package intake

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
)

func newTestStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "uploads"), maxBytes, zap.NewNop())
}

// multipartHeader builds a real *multipart.FileHeader by parsing a form.
func multipartHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="audio"; filename="`+filename+`"`)
	if contentType != "" {
		partHeader.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["audio"][0]
}

func TestIsAudio(t *testing.T) {
	tests := []struct {
		mediaType string
		expected  bool
	}{
		{"audio/mpeg", true},
		{"audio/wav", true},
		{"Audio/MP4", true},
		{" audio/webm;codecs=opus", true},
		{"video/mp4", false},
		{"text/plain", false},
		{"application/octet-stream", false},
		{"audio", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAudio(tt.mediaType))
		})
	}
}

func TestStore_SaveMultipart(t *testing.T) {
	store := newTestStore(t, 1<<20)
	content := []byte("ID3 fake mp3 bytes")

	upload, err := store.SaveMultipart(multipartHeader(t, "standup.mp3", "audio/mpeg", content))
	require.NoError(t, err)

	assert.Equal(t, "standup.mp3", upload.OriginalName)
	assert.Equal(t, "audio/mpeg", upload.MediaType)
	assert.Equal(t, int64(len(content)), upload.SizeBytes)
	assert.Equal(t, store.Dir(), filepath.Dir(upload.StoragePath))
	assert.Equal(t, ".mp3", filepath.Ext(upload.StoragePath))
	assert.Regexp(t, `^\d+-\d+\.mp3$`, filepath.Base(upload.StoragePath))

	stored, err := os.ReadFile(upload.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestStore_RejectsNonAudioBeforeStorage(t *testing.T) {
	store := newTestStore(t, 1<<20)

	for _, contentType := range []string{"text/plain", "video/mp4", ""} {
		t.Run("content type "+contentType, func(t *testing.T) {
			upload, err := store.SaveMultipart(multipartHeader(t, "notes.txt", contentType, []byte("hello")))
			require.Error(t, err)
			assert.Nil(t, upload)
			assert.ErrorIs(t, err, apperrors.ErrNotAudio)

			// the directory is never even created for a rejected upload
			_, statErr := os.Stat(store.Dir())
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestStore_RejectsOversizedUpload(t *testing.T) {
	store := newTestStore(t, 8)

	t.Run("declared size", func(t *testing.T) {
		_, err := store.SaveMultipart(multipartHeader(t, "long.wav", "audio/wav", []byte("0123456789")))
		assert.ErrorIs(t, err, apperrors.ErrUploadTooLarge)
	})

	t.Run("streamed size", func(t *testing.T) {
		_, err := store.Save(strings.NewReader("0123456789"), "long.wav", "audio/wav")
		assert.ErrorIs(t, err, apperrors.ErrUploadTooLarge)

		entries, readErr := os.ReadDir(store.Dir())
		require.NoError(t, readErr)
		assert.Empty(t, entries, "partial file must be removed")
	})
}

func TestStore_CreatesDirectoryIdempotently(t *testing.T) {
	store := newTestStore(t, 0)

	first, err := store.Save(strings.NewReader("a"), "a.mp3", "audio/mpeg")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("b"), "b.mp3", "audio/mpeg")
	require.NoError(t, err)

	assert.FileExists(t, first.StoragePath)
	assert.FileExists(t, second.StoragePath)
}

func TestStore_DirectoryCreationFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	store := NewStore(filepath.Join(blocker, "uploads"), 0, zap.NewNop())
	_, err := store.Save(strings.NewReader("a"), "a.mp3", "audio/mpeg")
	assert.ErrorIs(t, err, apperrors.ErrFileWriteFailed)
}

func TestStore_SameMillisecondSameNameProducesDistinctPaths(t *testing.T) {
	store := newTestStore(t, 0)
	frozen := time.UnixMilli(1_700_000_000_000)
	store.now = func() time.Time { return frozen }

	// The first two draws collide; O_EXCL forces a redraw for the second upload.
	var mu sync.Mutex
	draws := []int64{42, 42, 43}
	store.suffix = func() int64 {
		mu.Lock()
		defer mu.Unlock()
		next := draws[0]
		if len(draws) > 1 {
			draws = draws[1:]
		}
		return next
	}

	first, err := store.Save(strings.NewReader("first"), "meeting.mp3", "audio/mpeg")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("second"), "meeting.mp3", "audio/mpeg")
	require.NoError(t, err)

	assert.NotEqual(t, first.StoragePath, second.StoragePath)
	assert.Equal(t, "1700000000000-42.mp3", filepath.Base(first.StoragePath))
	assert.Equal(t, "1700000000000-43.mp3", filepath.Base(second.StoragePath))

	firstContent, err := os.ReadFile(first.StoragePath)
	require.NoError(t, err)
	secondContent, err := os.ReadFile(second.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, "first", string(firstContent))
	assert.Equal(t, "second", string(secondContent))
}

func TestStore_ConcurrentUploadsWithIdenticalNames(t *testing.T) {
	store := newTestStore(t, 0)
	frozen := time.UnixMilli(1_700_000_000_000)
	store.now = func() time.Time { return frozen }

	const uploads = 16
	paths := make([]string, uploads)
	errs := make([]error, uploads)

	var wg sync.WaitGroup
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			upload, err := store.Save(strings.NewReader("same recording"), "meeting.mp3", "audio/mpeg")
			errs[i] = err
			if upload != nil {
				paths[i] = upload.StoragePath
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, uploads)
	for i := 0; i < uploads; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[paths[i]], "duplicate storage path %s", paths[i])
		seen[paths[i]] = true
		assert.FileExists(t, paths[i])
	}
}

func TestStore_ExhaustedNameAttempts(t *testing.T) {
	store := newTestStore(t, 0)
	store.now = func() time.Time { return time.UnixMilli(1) }
	store.suffix = func() int64 { return 7 }

	_, err := store.Save(strings.NewReader("a"), "a.mp3", "audio/mpeg")
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("b"), "b.mp3", "audio/mpeg")
	assert.ErrorIs(t, err, apperrors.ErrFileWriteFailed)
	assert.Contains(t, err.Error(), "no free storage name")
}

func TestStore_Release(t *testing.T) {
	store := newTestStore(t, 0)

	upload, err := store.Save(strings.NewReader("bytes"), "a.mp3", "audio/mpeg")
	require.NoError(t, err)

	require.NoError(t, store.Release(upload))
	assert.NoFileExists(t, upload.StoragePath)

	// second release is a no-op
	assert.NoError(t, store.Release(upload))
	assert.NoError(t, store.Release(nil))
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		name         string
		originalName string
		mediaType    string
		expected     string
	}{
		{"original extension kept", "Weekly Sync.MP3", "audio/mpeg", ".mp3"},
		{"derived from media type", "recording", "audio/wav", ".wav"},
		{"media type parameters ignored", "blob", "audio/webm;codecs=opus", ".webm"},
		{"unknown media type", "recording", "audio/x-unknown", ""},
		{"path components stripped", "../../etc/passwd.m4a", "audio/mp4", ".m4a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extensionFor(tt.originalName, tt.mediaType))
		})
	}
}

func TestMediaTypeFor(t *testing.T) {
	tests := map[string]string{
		"standup.mp3":       "audio/mpeg",
		"Board Meeting.M4A": "audio/mp4",
		"call.flac":         "audio/flac",
		"notes.html":        "text/html",
		"recording":         "",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, MediaTypeFor(name))
		})
	}
}
