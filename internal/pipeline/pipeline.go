// Package pipeline is the shared import and categorization pipeline:
// parse, categorize, deduplicate, merge into the monthly store. Screens
// and commands are thin callers; every store mutation goes through
// here.
package pipeline

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/financas-dev/financas/internal/auditlog"
	"github.com/financas-dev/financas/internal/config"
	"github.com/financas-dev/financas/internal/feed"
	"github.com/financas-dev/financas/internal/gitops"
	"github.com/financas-dev/financas/internal/notify"
	"github.com/financas-dev/financas/internal/store"
)

// Sentinel errors callers map to user-facing notices. ErrAlreadyImported
// and ErrMonthConflict are warning-class: the store is untouched and the
// user decides what happens next.
var (
	ErrUnknownFeed     = errors.New("unknown feed format")
	ErrNoValidRows     = errors.New("no valid transactions in file")
	ErrAlreadyImported = errors.New("file already imported")
	ErrMonthConflict   = errors.New("month already loaded")
	ErrMonthNotFound   = errors.New("month not found")
)

// ConflictPolicy decides what happens when an import targets a bucket
// that already holds transactions.
type ConflictPolicy int

const (
	// ConflictAsk rejects the merge with ErrMonthConflict; the caller
	// must come back with an explicit append or replace decision.
	ConflictAsk ConflictPolicy = iota
	// ConflictAppend keeps existing transactions and appends the batch.
	ConflictAppend
	// ConflictReplace discards the bucket and stores only the batch.
	ConflictReplace
)

// ParseConflictPolicy converts a CLI flag value to a ConflictPolicy.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch s {
	case "", "ask":
		return ConflictAsk, nil
	case "append":
		return ConflictAppend, nil
	case "replace":
		return ConflictReplace, nil
	default:
		return ConflictAsk, errors.New("conflict policy must be ask, append or replace")
	}
}

// Service wires the pipeline components together.
type Service struct {
	store *store.Store
	feeds *feed.Registry
	cfg   *config.Config
	sub   *notify.Subscription
	log   zerolog.Logger
}

// NewService creates a pipeline Service. broker may be nil; when set,
// the service subscribes to in-process rule-change events.
func NewService(st *store.Store, feeds *feed.Registry, cfg *config.Config, broker *notify.Broker, log zerolog.Logger) *Service {
	svc := &Service{store: st, feeds: feeds, cfg: cfg, log: log}
	if broker != nil {
		svc.sub = broker.Subscribe()
	}
	return svc
}

// audit records a pipeline operation. Best-effort: a failing audit log
// never fails the operation that already persisted.
func (s *Service) audit(runID, action, feedName, bucket, details string) {
	entry := auditlog.Entry{
		Timestamp: time.Now(),
		RunID:     runID,
		Action:    action,
		Feed:      feedName,
		Bucket:    bucket,
		Details:   details,
	}
	if err := auditlog.Append(s.store.Dir(), []auditlog.Entry{entry}); err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("audit log append failed")
	}
}

// commit auto-commits the data directory when configured and it is a
// git repository.
func (s *Service) commit(message string) {
	if !s.cfg.Git.AutoCommit || !gitops.IsRepo(s.store.Dir()) {
		return
	}
	changed, err := gitops.HasChanges(s.store.Dir())
	if err != nil {
		s.log.Warn().Err(err).Msg("git status failed")
		return
	}
	if !changed {
		return
	}
	hash, err := gitops.CommitAll(s.store.Dir(), message, s.cfg.Git.AuthorName, s.cfg.Git.AuthorEmail)
	if err != nil {
		s.log.Warn().Err(err).Msg("auto-commit failed")
		return
	}
	s.log.Debug().Str("commit", hash).Msg("data dir committed")
}

func newRunID() string {
	return uuid.NewString()
}
