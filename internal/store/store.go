// Package store persists the pipeline documents under a data directory.
//
// Three logical documents mirror what the pipeline owns: transactions
// grouped by year-month bucket, the category rule list (with the
// rules-changed flag persisted alongside it), and the deduplication
// ledger. Each document is a flat JSON file read and written wholesale;
// there is no partial or incremental persistence. The store assumes a
// single local client with at most one in-flight mutation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/financas-dev/financas/internal/model"
)

const (
	monthsFile = "monthly-transactions.json"
	rulesFile  = "categories.json"
	ledgerFile = "processed-identifiers.json"
)

// Store owns the persisted documents.
type Store struct {
	dir string
	log zerolog.Logger
}

// New creates a Store rooted at dir. The directory is created on first
// write.
func New(dir string, log zerolog.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// rulesDoc is the persisted shape of the category rules document. The
// rules-changed flag lives alongside the rules so a rule edit and its
// signal persist together.
type rulesDoc struct {
	Categories   []model.Category `json:"categories"`
	RulesChanged bool             `json:"rules_changed"`
}

// Months reads the transactions-by-month document. A missing file reads
// as an empty map.
func (s *Store) Months() (map[string][]model.Transaction, error) {
	months := make(map[string][]model.Transaction)
	if err := s.read(monthsFile, &months); err != nil {
		return nil, err
	}
	return months, nil
}

// SaveMonths writes the transactions-by-month document wholesale. A
// transaction without a date is rejected: invalid rows must be filtered
// before storing.
func (s *Store) SaveMonths(months map[string][]model.Transaction) error {
	for key, txns := range months {
		for _, t := range txns {
			if !t.Valid() {
				return fmt.Errorf("bucket %s: transaction %q has no date", key, t.Description)
			}
		}
	}
	return s.write(monthsFile, months)
}

// Categories reads the category rule list in stored (user-defined)
// order. A missing file reads as an empty list.
func (s *Store) Categories() ([]model.Category, error) {
	var doc rulesDoc
	if err := s.read(rulesFile, &doc); err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

// SaveCategories writes the rule list wholesale. markChanged raises the
// persisted rules-changed flag; when false the current flag is kept.
func (s *Store) SaveCategories(cats []model.Category, markChanged bool) error {
	var doc rulesDoc
	if err := s.read(rulesFile, &doc); err != nil {
		return err
	}
	doc.Categories = cats
	if markChanged {
		doc.RulesChanged = true
	}
	return s.write(rulesFile, doc)
}

// RulesChanged reports the persisted rules-changed flag without
// clearing it.
func (s *Store) RulesChanged() (bool, error) {
	var doc rulesDoc
	if err := s.read(rulesFile, &doc); err != nil {
		return false, err
	}
	return doc.RulesChanged, nil
}

// ConsumeRulesChanged reports whether the rules-changed flag was set and
// clears it in the same call. At-most-once: a second consumer sees
// false until the rules change again.
func (s *Store) ConsumeRulesChanged() (bool, error) {
	var doc rulesDoc
	if err := s.read(rulesFile, &doc); err != nil {
		return false, err
	}
	if !doc.RulesChanged {
		return false, nil
	}
	doc.RulesChanged = false
	if err := s.write(rulesFile, doc); err != nil {
		return false, err
	}
	return true, nil
}

// Ledger reads the deduplication ledger. A missing file reads as empty.
func (s *Store) Ledger() ([]string, error) {
	var ids []string
	if err := s.read(ledgerFile, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveLedger writes the deduplication ledger wholesale.
func (s *Store) SaveLedger(ids []string) error {
	return s.write(ledgerFile, ids)
}

// Clear removes all persisted documents (the settings "clear cache"
// action). Missing files are not an error.
func (s *Store) Clear() error {
	for _, name := range []string{monthsFile, rulesFile, ledgerFile} {
		err := os.Remove(filepath.Join(s.dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	s.log.Info().Str("dir", s.dir).Msg("store cleared")
	return nil
}

func (s *Store) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	s.log.Debug().Str("doc", name).Msg("document written")
	return nil
}
