// Package search runs recursive file name searches in the background.
//
// A Searcher walks a directory tree on its own goroutine and never
// touches UI state from there. Matches accumulate behind a mutex and
// ranked snapshots are handed to the main loop through an Invoker,
// normally the Application's invoke queue. Cancellation is cooperative:
// the walk checks its context between directory entries.
package search

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/dshills/termstack/internal/app"
	"github.com/dshills/termstack/internal/logging"
)

// Common errors.
var (
	ErrEmptyPattern   = errors.New("empty search pattern")
	ErrSearchCanceled = errors.New("search canceled")
	ErrNotDirectory   = errors.New("search root is not a directory")
)

// DefaultBatchSize is the number of visited files between progress
// snapshots.
const DefaultBatchSize = 256

// Invoker runs fn on the main loop.
type Invoker interface {
	Invoke(fn func())
}

// Options configures a Searcher.
type Options struct {
	// MaxResults limits the ranked matches in a snapshot (0 = unlimited).
	MaxResults int

	// Ignore holds base name patterns (filepath.Match syntax) that are
	// skipped during the walk. Matching directories are not entered.
	Ignore []string

	// BatchSize is the number of files visited between snapshots.
	BatchSize int

	Logger *logging.Logger
}

// Match is one ranked file.
type Match struct {
	// Path is relative to the search root, slash separated.
	Path string

	Score int

	// MatchedIndexes are the byte offsets in Path matched by the pattern.
	MatchedIndexes []int
}

// Result is a snapshot of a search.
type Result struct {
	Root    string
	Pattern string
	Matches []Match

	// Scanned counts the files visited so far.
	Scanned int

	// Skipped counts entries that could not be read.
	Skipped int

	Done bool
	Err  error

	// Feedback is a one-line status suitable for a status bar.
	Feedback string
}

// Searcher runs one background search at a time. Starting a new search
// cancels the previous one and suppresses its remaining snapshots.
type Searcher struct {
	invoker  Invoker
	opts     Options
	logger   *logging.Logger
	onResult func(Result)

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	running bool
	last    Result
	done    chan struct{}
}

// New creates a Searcher that delivers snapshots to onResult on the
// main loop.
func New(invoker Invoker, opts Options, onResult func(Result)) *Searcher {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &Searcher{
		invoker:  invoker,
		opts:     opts,
		logger:   logging.OrDefault(opts.Logger).WithComponent("search"),
		onResult: onResult,
	}
}

// Start begins searching root for file names fuzzy matching pattern.
func (s *Searcher) Start(ctx context.Context, root, pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	s.logger.Debug("search %q in %s", pattern, root)

	go func() {
		defer close(done)
		defer cancel()
		s.run(ctx, gen, root, pattern)
	}()
	return nil
}

// Stop cancels the running search, if any.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Wait blocks until the current search goroutine has returned.
func (s *Searcher) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Running reports whether a search is in progress.
func (s *Searcher) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Last returns the most recent snapshot produced by the current search.
func (s *Searcher) Last() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Searcher) run(ctx context.Context, gen uint64, root, pattern string) {
	var (
		names   []string
		scanned int
		skipped int
	)

	snapshot := func(done bool, err error) Result {
		matches := Rank(pattern, names, s.opts.MaxResults)
		return Result{
			Root:     root,
			Pattern:  pattern,
			Matches:  matches,
			Scanned:  scanned,
			Skipped:  skipped,
			Done:     done,
			Err:      err,
			Feedback: feedback(pattern, scanned, skipped, done, err, len(matches)),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err := app.NewRecoveredPanicError(r, string(debug.Stack()))
			s.logger.Error("search panicked: %v", r)
			s.post(gen, Result{
				Root:     root,
				Pattern:  pattern,
				Scanned:  scanned,
				Done:     true,
				Err:      err,
				Feedback: "Search failed: " + err.Error(),
			})
		}
	}()

	err := Walk(ctx, root, s.opts.Ignore, func(rel string) {
		names = append(names, rel)
		scanned++
		if scanned%s.opts.BatchSize == 0 {
			s.post(gen, snapshot(false, nil))
		}
	}, func(path string, err error) {
		skipped++
		s.logger.Debug("skip %s: %v", path, err)
	})

	if err != nil && !errors.Is(err, ErrSearchCanceled) {
		s.logger.Warn("search %q in %s: %v", pattern, root, err)
	}
	s.post(gen, snapshot(true, err))
}

// post hands res to the main loop unless a newer search has started.
func (s *Searcher) post(gen uint64, res Result) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.last = res
	if res.Done {
		s.running = false
	}
	s.mu.Unlock()

	if s.invoker == nil || s.onResult == nil {
		return
	}
	s.invoker.Invoke(func() {
		s.mu.Lock()
		stale := gen != s.gen
		s.mu.Unlock()
		if !stale {
			s.onResult(res)
		}
	})
}

// Walk visits every regular file under root, calling visit with its
// slash separated path relative to root. Entries that cannot be read
// are reported to skip and the walk continues. Walk returns
// ErrSearchCanceled when ctx is done.
func Walk(ctx context.Context, root string, ignore []string, visit func(rel string), skip func(path string, err error)) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ErrSearchCanceled
		}
		if err != nil {
			if path == root {
				return err
			}
			if skip != nil {
				skip(path, err)
			}
			return nil
		}
		if path != root && ignored(d.Name(), ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		visit(filepath.ToSlash(rel))
		return nil
	})
}

// Rank orders names by fuzzy match against pattern, best first, and
// keeps at most limit entries when limit is positive.
func Rank(pattern string, names []string, limit int) []Match {
	if pattern == "" || len(names) == 0 {
		return nil
	}
	found := fuzzy.Find(pattern, names)
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{
			Path:           m.Str,
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return matches
}

func ignored(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func feedback(pattern string, scanned, skipped int, done bool, err error, matches int) string {
	switch {
	case errors.Is(err, ErrSearchCanceled):
		return fmt.Sprintf("Search for %q canceled after %d files", pattern, scanned)
	case err != nil:
		return "Search failed: " + err.Error()
	case !done:
		return fmt.Sprintf("Searching for %q... %d files", pattern, scanned)
	case matches == 0:
		return fmt.Sprintf("No files match %q (%d searched)", pattern, scanned)
	}
	msg := fmt.Sprintf("%d of %d files match %q", matches, scanned, pattern)
	if skipped > 0 {
		msg += fmt.Sprintf(", %d unreadable", skipped)
	}
	return msg
}
