// Package dataverse translates between application models and the remote
// Dataverse schema: column names, choice-enum codecs, lookup references, and
// virtual fields. The generic data service composes these adapters with the
// retry policy; nothing else in the application knows remote column names.
package dataverse

import (
	"sort"
	"strings"
)

// ChoiceCodec converts between a choice column's integer codes and the
// application's string enum. Built from a single canonical string→int map
// with the inverse derived automatically so the two directions cannot drift.
type ChoiceCodec struct {
	toRemote   map[string]int
	fromRemote map[int]string
}

func NewChoiceCodec(values map[string]int) *ChoiceCodec {
	inverse := make(map[int]string, len(values))
	for name, code := range values {
		inverse[code] = name
	}
	return &ChoiceCodec{toRemote: values, fromRemote: inverse}
}

// Encode maps an enum value to its remote code. Unmapped values encode to 0;
// callers must not supply out-of-domain values.
func (c *ChoiceCodec) Encode(value string) int {
	return c.toRemote[value]
}

// Decode maps a remote code back to the enum value, or "" when unmapped.
func (c *ChoiceCodec) Decode(code int) string {
	return c.fromRemote[code]
}

// Lookup describes a reference column's target table, used to build
// reference-bind payloads on write.
type Lookup struct {
	TargetTable string
}

// ColumnAdapter is the static per-entity descriptor driving schema
// translation. Field names are the application (JSON) names.
type ColumnAdapter struct {
	// Table is the remote entity set name, e.g. "redi_equipments".
	Table string
	// EntityName labels NotFound errors, e.g. "Equipment".
	EntityName string
	// IDField / IDColumn name the primary key on both sides.
	IDField  string
	IDColumn string
	// Columns maps every application field to its remote column.
	Columns map[string]string
	// Choices holds codecs for choice columns.
	Choices map[string]*ChoiceCodec
	// Lookups names the target table per reference field.
	Lookups map[string]Lookup
	// VirtualFields exist in the application model but have no remote column:
	// excluded from selection, read back as nil, dropped on write.
	VirtualFields []string
	// BaseFilter is applied to every list query.
	BaseFilter string
	// SearchFields are the fields eligible for free-text search.
	SearchFields []string
}

// IsVirtual reports whether the field has no remote column.
func (a *ColumnAdapter) IsVirtual(field string) bool {
	for _, v := range a.VirtualFields {
		if v == field {
			return true
		}
	}
	return false
}

// SelectColumns returns the remote columns of all non-virtual fields, sorted
// for deterministic query building.
func (a *ColumnAdapter) SelectColumns() []string {
	columns := make([]string, 0, len(a.Columns))
	for field, column := range a.Columns {
		if a.IsVirtual(field) {
			continue
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// DecodeValue converts one remote column value into its application form:
// choice codes become enum strings, missing values become nil.
func (a *ColumnAdapter) DecodeValue(field string, value any) any {
	if value == nil {
		return nil
	}
	codec := a.Choices[field]
	if codec == nil {
		return value
	}
	switch code := value.(type) {
	case int:
		return codec.Decode(code)
	case int32:
		return codec.Decode(int(code))
	case int64:
		return codec.Decode(int(code))
	case float64:
		return codec.Decode(int(code))
	}
	return value
}

// EncodeValue converts one application field value into its remote form.
func (a *ColumnAdapter) EncodeValue(field string, value any) any {
	codec := a.Choices[field]
	if codec == nil {
		return value
	}
	if s, ok := value.(string); ok {
		return codec.Encode(s)
	}
	return value
}

// IsLookupColumn reports whether a remote column is a lookup value column.
func IsLookupColumn(column string) bool {
	return strings.HasPrefix(column, "_") && strings.HasSuffix(column, "_value")
}

// NavigationProperty strips the lookup column decoration: "_redi_x_value"
// becomes "redi_x".
func NavigationProperty(column string) string {
	return strings.TrimSuffix(strings.TrimPrefix(column, "_"), "_value")
}
