// Package dataservice defines the uniform CRUD + list contract all stores
// implement. Consumers depend only on DataService[T]; whether the backing
// implementation is remote, Postgres, or in-memory is a wiring decision.
package dataservice

import (
	"context"
	"encoding/json"
)

// ListOptions narrows a GetAll call.
type ListOptions struct {
	// Filter is an equality or provider-specific expression over application
	// field names, e.g. "equipmentId eq 'abc'".
	Filter string
	// Search is free text matched against the entity's configured search fields.
	Search string
	// OrderBy is "field direction", e.g. "createdOn desc".
	OrderBy string
	// Top/Skip paginate. Zero means no limit / no offset.
	Top  int
	Skip int
}

// PagedResult is a page of records plus paging metadata.
type PagedResult[T any] struct {
	Data       []T  `json:"data"`
	TotalCount int  `json:"totalCount"`
	HasMore    bool `json:"hasMore"`
}

// Fields is a partial record keyed by application field names. A key mapped
// to nil clears the field; an absent key leaves it untouched.
type Fields map[string]any

// DataService is the uniform store contract, parameterized over entity type.
type DataService[T any] interface {
	GetAll(ctx context.Context, opts *ListOptions) (*PagedResult[T], error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, fields Fields) (*T, error)
	Update(ctx context.Context, id string, fields Fields) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ToFields flattens an entity into a Fields map via its JSON representation.
func ToFields(v any) (Fields, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields Fields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// FromFields materializes an entity from a Fields map.
func FromFields[T any](fields Fields) (*T, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Merge overlays patch onto base without mutating either.
func Merge(base, patch Fields) Fields {
	merged := make(Fields, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Clone shallow-copies a Fields map.
func Clone(fields Fields) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
