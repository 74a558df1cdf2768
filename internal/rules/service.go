// Package rules manages the user-defined category rule set.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/financas-dev/financas/internal/model"
	"github.com/financas-dev/financas/internal/notify"
	"github.com/financas-dev/financas/internal/store"
)

var (
	// ErrDuplicate is returned when a category name is already taken.
	ErrDuplicate = errors.New("category already exists")
	// ErrNotFound is returned when no category has the given name.
	ErrNotFound = errors.New("category not found")
)

// Service provides rule management over the persisted store. Every
// successful mutation raises the persisted rules-changed flag and
// publishes a rule-change event, so stored transactions get
// recategorized on the next screen focus.
type Service struct {
	store  *store.Store
	broker *notify.Broker
}

// NewService creates a rules Service. broker may be nil.
func NewService(st *store.Store, broker *notify.Broker) *Service {
	return &Service{store: st, broker: broker}
}

// List returns the rule set in stored (user-defined) order.
func (s *Service) List() ([]model.Category, error) {
	return s.store.Categories()
}

// Add appends a new category with no keywords. Names are unique.
func (s *Service) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is empty")
	}

	cats, err := s.store.Categories()
	if err != nil {
		return err
	}
	if _, ok := find(cats, name); ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}

	cats = append(cats, model.Category{Name: name, Keywords: []string{}})
	return s.save(cats)
}

// Rename changes a category's name, keeping its keywords and position.
func (s *Service) Rename(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("category name is empty")
	}

	cats, err := s.store.Categories()
	if err != nil {
		return err
	}
	i, ok := find(cats, oldName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, oldName)
	}
	if j, taken := find(cats, newName); taken && j != i {
		return fmt.Errorf("%w: %s", ErrDuplicate, newName)
	}

	cats[i].Name = newName
	return s.save(cats)
}

// Delete removes a category. Transactions keep their assigned name
// until the next recategorization pass reassigns them.
func (s *Service) Delete(name string) error {
	cats, err := s.store.Categories()
	if err != nil {
		return err
	}
	i, ok := find(cats, name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	cats = append(cats[:i], cats[i+1:]...)
	return s.save(cats)
}

// AddKeyword adds a match term to a category. Adding a term the
// category already has is a no-op.
func (s *Service) AddKeyword(name, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return fmt.Errorf("keyword is empty")
	}

	cats, err := s.store.Categories()
	if err != nil {
		return err
	}
	i, ok := find(cats, name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if cats[i].HasKeyword(keyword) {
		return nil
	}

	cats[i].Keywords = append(cats[i].Keywords, keyword)
	return s.save(cats)
}

// RemoveKeyword removes a match term from a category.
func (s *Service) RemoveKeyword(name, keyword string) error {
	cats, err := s.store.Categories()
	if err != nil {
		return err
	}
	i, ok := find(cats, name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	kept := cats[i].Keywords[:0]
	for _, k := range cats[i].Keywords {
		if !strings.EqualFold(k, keyword) {
			kept = append(kept, k)
		}
	}
	cats[i].Keywords = kept
	return s.save(cats)
}

func (s *Service) save(cats []model.Category) error {
	if err := s.store.SaveCategories(cats, true); err != nil {
		return err
	}
	if s.broker != nil {
		s.broker.Publish(notify.Event{Topic: notify.TopicRulesChanged})
	}
	return nil
}

func find(cats []model.Category, name string) (int, bool) {
	for i, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return i, true
		}
	}
	return -1, false
}
