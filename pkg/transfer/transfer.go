package transfer

import (
	"context"
	"os"
	"path"
	"time"

	"github.com/rs/zerolog"
)

// session is what a Transferer needs from an established connection. The
// only production implementation is *Session; tests substitute a fake.
type session interface {
	fs() remoteFS
	Close() error
}

// Transferer performs the full upload of one local root to one destination:
// connect, walk, ensure remote directories, stream files, accumulate stats.
// All steps are strictly sequential; a Transferer is used by exactly one
// goroutine.
type Transferer struct {
	dest     Destination
	keyPath  string
	logger   zerolog.Logger
	reporter ProgressReporter

	// connectFn is swapped out in tests to avoid real network dials.
	connectFn func(dest Destination, keyPath string) (session, error)
}

// Option configures a Transferer.
type Option func(*Transferer)

// WithReporter attaches a progress observer.
func WithReporter(r ProgressReporter) Option {
	return func(t *Transferer) {
		if r != nil {
			t.reporter = r
		}
	}
}

// New creates a Transferer for one destination. keyPath is only consulted
// when the destination's credential is key-based.
func New(dest Destination, keyPath string, logger zerolog.Logger, opts ...Option) *Transferer {
	t := &Transferer{
		dest:     dest,
		keyPath:  keyPath,
		logger:   logger.With().Str("destination", dest.Name).Logger(),
		reporter: NopReporter{},
		connectFn: func(dest Destination, keyPath string) (session, error) {
			return connect(dest, keyPath)
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the destination's display name.
func (t *Transferer) Name() string {
	return t.dest.Name
}

// Upload transfers the local root to the destination and returns the
// accumulated statistics. Any failure aborts this destination's transfer
// entirely; nothing is retried.
func (t *Transferer) Upload(ctx context.Context, root string) (*Stats, error) {
	start := time.Now()

	// Validate the root before anything touches the network.
	rootInfo, err := os.Stat(root)
	if err != nil {
		return nil, WrapError(t.dest.Name, "stat "+root, ErrLocalPath)
	}

	t.logger.Debug().
		Str("addr", t.dest.Addr()).
		Str("user", t.dest.Username).
		Msg("connecting")

	sess, err := t.connectFn(t.dest, t.keyPath)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	tasks, err := walkRoot(root)
	if err != nil {
		return nil, err
	}

	remote := sess.fs()
	var total int64
	for i := range tasks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tasks[i].RemotePath = path.Join(t.dest.RemotePath, tasks[i].RelPath)
		task := tasks[i]

		t.reporter.UploadingFile(task.RelPath)
		t.logger.Debug().
			Str("local", task.LocalPath).
			Str("remote", task.RemotePath).
			Msg("uploading file")

		if err := ensureRemoteDir(remote, t.dest.Name, path.Dir(task.RemotePath)); err != nil {
			return nil, err
		}

		n, err := streamFile(remote, t.dest.Name, task.LocalPath, task.RemotePath)
		if err != nil {
			return nil, err
		}
		total += n
	}

	if rootInfo.IsDir() {
		t.reporter.Completed(len(tasks), "")
	} else {
		t.reporter.Completed(1, rootInfo.Name())
	}

	stats := &Stats{
		Bytes:    total,
		Duration: time.Since(start),
	}

	t.logger.Info().
		Int("files", len(tasks)).
		Int64("bytes", stats.Bytes).
		Dur("duration", stats.Duration).
		Msg("transfer completed")

	return stats, nil
}
