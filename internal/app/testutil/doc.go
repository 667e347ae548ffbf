// Package testutil provides shared test doubles and fixtures.
//
// MockTranscriber and MockSummarizer are testify mocks of the provider
// interfaces in internal/app/api. The fixtures supply a sample transcript,
// a five-section analysis and a small audio payload:
//
//	transcriber := testutil.NewMockTranscriber()
//	transcriber.ExpectTranscribe(testutil.SampleTranscript, nil)
//
//	summarizer := testutil.NewMockSummarizer()
//	summarizer.ExpectSummarize(testutil.SampleTranscript, testutil.SampleAnalysis, nil)
package testutil
