package pipeline

import (
	"fmt"

	"github.com/financas-dev/financas/internal/auditlog"
	"github.com/financas-dev/financas/internal/categorize"
)

// Recategorize re-runs the categorizer over a stored bucket with the
// current rule set, rewriting only the category field, and persists the
// bucket. Idempotent: with unchanged rules a second pass writes the
// same contents.
func (s *Service) Recategorize(key string) error {
	runID := newRunID()

	months, err := s.store.Months()
	if err != nil {
		return err
	}
	txns, ok := months[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMonthNotFound, key)
	}

	rules, err := s.store.Categories()
	if err != nil {
		return err
	}

	for i := range txns {
		txns[i].Category = categorize.Categorize(txns[i].Description, rules, s.cfg.DefaultCategory)
	}
	months[key] = txns

	if err := s.store.SaveMonths(months); err != nil {
		return err
	}

	s.audit(runID, auditlog.ActionRecategorize, "", key, fmt.Sprintf("%d transactions", len(txns)))
	s.commit("recategorize " + key)
	s.log.Debug().Str("run_id", runID).Str("bucket", key).Msg("bucket recategorized")
	return nil
}

// RecategorizeIfRulesChanged is the screen-focus hook: it consumes the
// rules-changed signal (persisted flag plus any queued in-process
// events) exactly once and recategorizes the bucket only when the
// signal was set. Returns whether a pass ran.
func (s *Service) RecategorizeIfRulesChanged(key string) (bool, error) {
	changed, err := s.store.ConsumeRulesChanged()
	if err != nil {
		return false, err
	}
	if s.sub != nil && len(s.sub.Drain()) > 0 {
		changed = true
	}
	if !changed {
		return false, nil
	}
	if err := s.Recategorize(key); err != nil {
		return false, err
	}
	return true, nil
}
