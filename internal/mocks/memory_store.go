package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/repositories"
)

// MemoryStore is an in-memory services.Store. Errors set on the struct are
// returned by the matching method instead of touching the data.
type MemoryStore[T any, PT interface {
	*T
	models.Entity
}] struct {
	mu     sync.Mutex
	items  map[int64]T
	nextID int64

	CreateErr error
	UpdateErr error
	DeleteErr error

	// SearchFunc overrides the column matching of Search
	SearchFunc func(item *T, f repositories.Filter) bool
	// ExistsFunc overrides the column matching of ExistsWhere
	ExistsFunc func(where map[string]any, excludeID int64) bool

	LastFilter repositories.Filter
}

// NewMemoryStore creates an empty store seeded with items
func NewMemoryStore[T any, PT interface {
	*T
	models.Entity
}](items ...T) *MemoryStore[T, PT] {
	s := &MemoryStore[T, PT]{items: map[int64]T{}}
	for _, item := range items {
		id := PT(&item).GetID()
		s.items[id] = item
		if id > s.nextID {
			s.nextID = id
		}
	}
	return s
}

func (s *MemoryStore[T, PT]) List(ctx context.Context) ([]*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(nil, repositories.Filter{}), nil
}

func (s *MemoryStore[T, PT]) GetByID(ctx context.Context, id int64) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &item, nil
}

func (s *MemoryStore[T, PT]) Create(ctx context.Context, item *T) (int64, error) {
	if s.CreateErr != nil {
		return 0, s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	PT(item).SetID(s.nextID)
	s.items[s.nextID] = *item
	return s.nextID, nil
}

func (s *MemoryStore[T, PT]) Update(ctx context.Context, id int64, item *T) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return repositories.ErrNotFound
	}
	PT(item).SetID(id)
	s.items[id] = *item
	return nil
}

func (s *MemoryStore[T, PT]) Delete(ctx context.Context, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryStore[T, PT]) Search(ctx context.Context, f repositories.Filter) ([]*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastFilter = f
	keep := s.SearchFunc
	if keep == nil {
		keep = matchesFilter[T]
	}
	return s.sorted(keep, f), nil
}

func (s *MemoryStore[T, PT]) ExistsWhere(ctx context.Context, where map[string]any, excludeID int64) (bool, error) {
	if s.ExistsFunc != nil {
		return s.ExistsFunc(where, excludeID), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, item := range s.items {
		if excludeID > 0 && id == excludeID {
			continue
		}
		if matchesColumns(columnsOf(&item), where) {
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of stored rows
func (s *MemoryStore[T, PT]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *MemoryStore[T, PT]) sorted(keep func(*T, repositories.Filter) bool, f repositories.Filter) []*T {
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*T{}
	for _, id := range ids {
		item := s.items[id]
		if keep == nil || keep(&item, f) {
			out = append(out, &item)
		}
	}
	return out
}

// columnsOf exposes a row by its JSON field names, which are the column names
func columnsOf[T any](item *T) map[string]any {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil
	}
	cols := map[string]any{}
	_ = json.Unmarshal(raw, &cols)
	return cols
}

func sameValue(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func matchesColumns(cols, where map[string]any) bool {
	for c, v := range where {
		if !sameValue(cols[c], v) {
			return false
		}
	}
	return true
}

func matchesFilter[T any](item *T, f repositories.Filter) bool {
	cols := columnsOf(item)
	if !matchesColumns(cols, f.Equals) {
		return false
	}

	if f.Term != "" && len(f.TermColumns) > 0 {
		term := strings.ToLower(f.Term)
		found := false
		for _, c := range f.TermColumns {
			if v, ok := cols[c].(string); ok && strings.Contains(strings.ToLower(v), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.DateColumn != "" {
		raw, _ := cols[f.DateColumn].(string)
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return false
		}
		if f.From != nil && d.Before(*f.From) {
			return false
		}
		if f.To != nil && d.After(*f.To) {
			return false
		}
	}
	return true
}
