package transfer

// ProgressReporter receives transfer progress notifications for one
// destination. The engine only emits the events; rendering is up to the
// caller. Implementations are called from the goroutine running that
// destination's transfer.
type ProgressReporter interface {
	// UploadingFile is called before each file's bytes start moving.
	UploadingFile(relPath string)

	// Completed is called once after the whole transfer finished. For a
	// single-file upload name is the file's name and fileCount is 1; for a
	// directory upload name is empty and fileCount is the number of files.
	Completed(fileCount int, name string)
}

// NopReporter discards all progress notifications.
type NopReporter struct{}

func (NopReporter) UploadingFile(string) {}

func (NopReporter) Completed(int, string) {}
