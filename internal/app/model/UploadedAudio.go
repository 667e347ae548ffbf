package model

// UploadedAudio is a recording accepted by intake and stored on local disk
// for the lifetime of a single request.
type UploadedAudio struct {
	StoragePath  string
	OriginalName string
	MediaType    string
	SizeBytes    int64
}
