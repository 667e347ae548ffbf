package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/model"
)

// SampleTranscript is a short meeting transcript
const SampleTranscript = "Let's ship v2 by Friday."

// SampleAnalysis is a five-section analysis of SampleTranscript
const SampleAnalysis = `## EXECUTIVE SUMMARY
The team agreed to release v2 this week.

## KEY DECISIONS
- Ship v2 by Friday.

## ACTION ITEMS
- Prepare the v2 release by Friday.

## FOLLOW-UP POINTS
- Confirm release readiness on Thursday.

## NEXT STEPS
- Tag and deploy v2.`

// SampleAudio is a minimal MP3 frame header followed by padding. Providers
// are always stubbed in tests, so the content only has to be non-empty.
var SampleAudio = append([]byte{0xFF, 0xFB, 0x90, 0x64}, make([]byte, 412)...)

// WriteAudioFile writes SampleAudio under dir and returns the upload
// describing it.
func WriteAudioFile(t *testing.T, dir, name string) *model.UploadedAudio {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, SampleAudio, 0o644); err != nil {
		t.Fatalf("failed to write audio fixture: %v", err)
	}

	return &model.UploadedAudio{
		StoragePath:  path,
		OriginalName: name,
		MediaType:    "audio/mpeg",
		SizeBytes:    int64(len(SampleAudio)),
	}
}

// FileExists reports whether path exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
