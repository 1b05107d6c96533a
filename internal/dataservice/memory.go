package dataservice

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	apperrors "equipment-system/pkg/errors"

	"github.com/google/uuid"
)

// simple "field eq 'value'" equality filter
var eqFilterPattern = regexp.MustCompile(`^(\w+)\s+eq\s+'([^']*)'$`)

// MemoryConfig describes how a MemoryDataService identifies, labels, and
// searches its records.
type MemoryConfig struct {
	// IDField is the application field name of the primary key.
	IDField string
	// EntityName labels NotFound errors, e.g. "Equipment".
	EntityName string
	// SearchFields are matched case-insensitively by GetAll's Search option.
	SearchFields []string
	// Latency is the simulated per-call delay. Zero disables it.
	Latency time.Duration
	// NewID generates identities for Create. Defaults to uuid.NewString.
	NewID func() string
}

// MemoryDataService implements DataService over a private mutable collection.
// It performs no column or choice translation; records keep their
// application shape. Used for local development and tests.
type MemoryDataService[T any] struct {
	mu     sync.RWMutex
	items  []Fields
	config MemoryConfig
}

// NewMemoryDataService copies the supplied records so callers cannot mutate
// the store through the source slice.
func NewMemoryDataService[T any](items []T, config MemoryConfig) (*MemoryDataService[T], error) {
	if config.NewID == nil {
		config.NewID = uuid.NewString
	}

	store := &MemoryDataService[T]{config: config}
	for _, item := range items {
		fields, err := ToFields(item)
		if err != nil {
			return nil, err
		}
		store.items = append(store.items, fields)
	}
	return store, nil
}

func (s *MemoryDataService[T]) delay(ctx context.Context) error {
	if s.config.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.config.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *MemoryDataService[T]) GetAll(ctx context.Context, opts *ListOptions) (*PagedResult[T], error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &ListOptions{}
	}

	s.mu.RLock()
	result := make([]Fields, len(s.items))
	copy(result, s.items)
	s.mu.RUnlock()

	if opts.Search != "" && len(s.config.SearchFields) > 0 {
		term := strings.ToLower(opts.Search)
		result = filterFields(result, func(item Fields) bool {
			for _, field := range s.config.SearchFields {
				if value, ok := item[field].(string); ok &&
					strings.Contains(strings.ToLower(value), term) {
					return true
				}
			}
			return false
		})
	}

	if opts.Filter != "" {
		if match := eqFilterPattern.FindStringSubmatch(opts.Filter); match != nil {
			field, want := match[1], match[2]
			result = filterFields(result, func(item Fields) bool {
				return stringify(item[field]) == want
			})
		}
	}

	totalCount := len(result)

	if opts.OrderBy != "" {
		parts := strings.Fields(opts.OrderBy)
		field := parts[0]
		descending := len(parts) > 1 && strings.EqualFold(parts[1], "desc")
		sort.SliceStable(result, func(i, j int) bool {
			a, b := result[i][field], result[j][field]
			// Nulls sort last regardless of direction, matching the
			// Postgres backend's NULLS LAST.
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			c := compareValues(a, b)
			if descending {
				return c > 0
			}
			return c < 0
		})
	}

	skip := opts.Skip
	if skip > totalCount {
		skip = totalCount
	}
	top := opts.Top
	if top <= 0 {
		top = totalCount
	}
	end := skip + top
	if end > totalCount {
		end = totalCount
	}
	paged := result[skip:end]

	data := make([]T, 0, len(paged))
	for _, fields := range paged {
		item, err := FromFields[T](fields)
		if err != nil {
			return nil, err
		}
		data = append(data, *item)
	}

	return &PagedResult[T]{
		Data:       data,
		TotalCount: totalCount,
		HasMore:    skip+top < totalCount,
	}, nil
}

func (s *MemoryDataService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, apperrors.NewNotFoundError(s.config.EntityName, id)
	}
	return FromFields[T](s.items[index])
}

func (s *MemoryDataService[T]) Create(ctx context.Context, fields Fields) (*T, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	record := Clone(fields)
	record[s.config.IDField] = s.config.NewID()

	s.mu.Lock()
	s.items = append(s.items, record)
	s.mu.Unlock()

	return FromFields[T](record)
}

func (s *MemoryDataService[T]) Update(ctx context.Context, id string, fields Fields) (*T, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, apperrors.NewNotFoundError(s.config.EntityName, id)
	}
	updated := Merge(s.items[index], fields)
	updated[s.config.IDField] = id
	s.items[index] = updated

	return FromFields[T](updated)
}

func (s *MemoryDataService[T]) Delete(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return apperrors.NewNotFoundError(s.config.EntityName, id)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// indexOf expects the caller to hold the lock.
func (s *MemoryDataService[T]) indexOf(id string) int {
	for i, item := range s.items {
		if stringify(item[s.config.IDField]) == id {
			return i
		}
	}
	return -1
}

func filterFields(items []Fields, keep func(Fields) bool) []Fields {
	out := items[:0:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// compareValues orders strings lexicographically and numbers numerically.
// Mixed or unordered types compare equal. Nil handling lives in the sort
// callback so it stays direction-independent.
func compareValues(a, b any) int {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
