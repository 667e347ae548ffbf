package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/testutil"
)

func fakeProvider(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/audio/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, testutil.SampleTranscript)
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": testutil.SampleAnalysis}},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupEnv(t *testing.T, providerURL string) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890abcdefghij")
	t.Setenv("OPENAI_BASE_URL", providerURL+"/v1")
	t.Setenv("ANALYSIS_PROVIDER", "openai")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("UPLOAD_MAX_BYTES", "")
	t.Setenv("LOG_DEVELOPMENT", "")
}

func TestRun_JSONOutputKeepsFile(t *testing.T) {
	var calls atomic.Int32
	setupEnv(t, fakeProvider(t, &calls).URL)
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })

	upload := testutil.WriteAudioFile(t, t.TempDir(), "standup.mp3")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), upload.StoragePath, &out))

	var result map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, testutil.SampleTranscript, result["transcription"])
	assert.Equal(t, testutil.SampleAnalysis, result["analysis"])

	assert.EqualValues(t, 2, calls.Load())
	assert.True(t, testutil.FileExists(upload.StoragePath), "local recordings must not be deleted")
}

func TestRun_MarkdownOutput(t *testing.T) {
	var calls atomic.Int32
	setupEnv(t, fakeProvider(t, &calls).URL)

	upload := testutil.WriteAudioFile(t, t.TempDir(), "standup.m4a")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), upload.StoragePath, &out))

	assert.Equal(t, "# Transcript\n\n"+testutil.SampleTranscript+"\n\n# Analysis\n\n"+testutil.SampleAnalysis+"\n", out.String())
}

func TestRun_RejectsNonAudio(t *testing.T) {
	var calls atomic.Int32
	setupEnv(t, fakeProvider(t, &calls).URL)

	path := filepath.Join(t.TempDir(), "notes.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>minutes</p>"), 0o644))

	err := run(context.Background(), path, io.Discard)
	assert.ErrorIs(t, err, apperrors.ErrNotAudio)
	assert.Zero(t, calls.Load())
}

func TestRun_MissingFile(t *testing.T) {
	var calls atomic.Int32
	setupEnv(t, fakeProvider(t, &calls).URL)

	err := run(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"), io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, calls.Load())
}

func TestRun_MissingCredential(t *testing.T) {
	setupEnv(t, "http://127.0.0.1:1")
	t.Setenv("OPENAI_API_KEY", "")

	err := run(context.Background(), "standup.mp3", io.Discard)
	assert.ErrorIs(t, err, apperrors.ErrMissingAPIKey)
}
