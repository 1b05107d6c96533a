package dataverse

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"equipment-system/internal/dataservice"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/retry"

	"go.uber.org/zap"
)

// DataverseDataService implements dataservice.DataService against the remote
// platform. Every operation translates field names, choice codes, and lookup
// references through the entity's ColumnAdapter and runs under the retry
// policy, so transient provider failures are invisible to callers.
type DataverseDataService[T any] struct {
	client  Client
	adapter *ColumnAdapter
	logger  *zap.Logger
	retry   *retry.Options
}

func NewDataverseDataService[T any](client Client, adapter *ColumnAdapter, logger *zap.Logger, retryOpts *retry.Options) *DataverseDataService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataverseDataService[T]{
		client:  client,
		adapter: adapter,
		logger:  logger,
		retry:   retryOpts,
	}
}

func (s *DataverseDataService[T]) GetAll(ctx context.Context, opts *dataservice.ListOptions) (*dataservice.PagedResult[T], error) {
	return retry.Do(ctx, s.retry, func(ctx context.Context) (*dataservice.PagedResult[T], error) {
		return s.getAllOnce(ctx, opts)
	})
}

func (s *DataverseDataService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return retry.Do(ctx, s.retry, func(ctx context.Context) (*T, error) {
		return s.getByIDOnce(ctx, id)
	})
}

func (s *DataverseDataService[T]) Create(ctx context.Context, fields dataservice.Fields) (*T, error) {
	return retry.Do(ctx, s.retry, func(ctx context.Context) (*T, error) {
		return s.createOnce(ctx, fields)
	})
}

func (s *DataverseDataService[T]) Update(ctx context.Context, id string, fields dataservice.Fields) (*T, error) {
	return retry.Do(ctx, s.retry, func(ctx context.Context) (*T, error) {
		return s.updateOnce(ctx, id, fields)
	})
}

func (s *DataverseDataService[T]) Delete(ctx context.Context, id string) error {
	_, err := retry.Do(ctx, s.retry, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.deleteOnce(ctx, id)
	})
	return err
}

func (s *DataverseDataService[T]) getAllOnce(ctx context.Context, opts *dataservice.ListOptions) (*dataservice.PagedResult[T], error) {
	params := s.buildParams(opts)

	result, err := s.client.Execute(ctx, s.adapter.Table, OpList, params)
	if err != nil {
		return nil, err
	}
	if err := s.failure(result, "list"); err != nil {
		return nil, err
	}

	rows := asRecords(result.Data)
	data := make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := s.fromRemote(row)
		if err != nil {
			return nil, err
		}
		data = append(data, *item)
	}

	totalCount := len(data)
	if result.Count != nil {
		totalCount = *result.Count
	}

	return &dataservice.PagedResult[T]{
		Data:       data,
		TotalCount: totalCount,
		HasMore:    result.SkipToken != "",
	}, nil
}

func (s *DataverseDataService[T]) getByIDOnce(ctx context.Context, id string) (*T, error) {
	result, err := s.client.Execute(ctx, s.adapter.Table, OpGet, map[string]any{ParamID: id})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		if result.Error != nil && result.Error.Status == 404 {
			return nil, apperrors.NewNotFoundError(s.adapter.EntityName, id)
		}
		return nil, s.failure(result, "retrieve")
	}
	return s.fromRemote(asRecord(result.Data))
}

func (s *DataverseDataService[T]) createOnce(ctx context.Context, fields dataservice.Fields) (*T, error) {
	record := s.toRemote(fields)

	result, err := s.client.Execute(ctx, s.adapter.Table, OpCreate, map[string]any{ParamRecord: record})
	if err != nil {
		return nil, err
	}
	if err := s.failure(result, "create"); err != nil {
		return nil, err
	}

	// Re-fetch by the generated key so the caller gets a complete record
	// including server-populated columns.
	data := asRecord(result.Data)
	createdID, _ := data[s.adapter.IDColumn].(string)
	if createdID == "" {
		createdID, _ = data["id"].(string)
	}
	if createdID != "" {
		return s.getByIDOnce(ctx, createdID)
	}

	// No key in the envelope: assemble what we can from the input and the
	// returned columns.
	return dataservice.FromFields[T](dataservice.Merge(fields, s.decodeRemote(data)))
}

func (s *DataverseDataService[T]) updateOnce(ctx context.Context, id string, fields dataservice.Fields) (*T, error) {
	record := s.toRemote(fields)

	result, err := s.client.Execute(ctx, s.adapter.Table, OpUpdate, map[string]any{
		ParamID:     id,
		ParamRecord: record,
	})
	if err != nil {
		return nil, err
	}
	if err := s.failure(result, "update"); err != nil {
		return nil, err
	}

	return s.getByIDOnce(ctx, id)
}

func (s *DataverseDataService[T]) deleteOnce(ctx context.Context, id string) error {
	result, err := s.client.Execute(ctx, s.adapter.Table, OpDelete, map[string]any{ParamID: id})
	if err != nil {
		return err
	}
	if !result.Success {
		if result.Error != nil && result.Error.Status == 404 {
			return apperrors.NewNotFoundError(s.adapter.EntityName, id)
		}
		return s.failure(result, "delete")
	}
	return nil
}

// fromRemote converts one provider row into the entity type. Every mapped
// field is populated; columns absent from the row decode to nil.
func (s *DataverseDataService[T]) fromRemote(row map[string]any) (*T, error) {
	return dataservice.FromFields[T](s.decodeRemote(row))
}

func (s *DataverseDataService[T]) decodeRemote(row map[string]any) dataservice.Fields {
	fields := make(dataservice.Fields, len(s.adapter.Columns))
	for field, column := range s.adapter.Columns {
		value, ok := row[column]
		if !ok {
			fields[field] = nil
			continue
		}
		fields[field] = s.adapter.DecodeValue(field, value)
	}
	return fields
}

// toRemote converts a partial patch into provider columns. The primary key,
// virtual fields, and unmapped keys are dropped; lookup references bind via
// the navigation property when cleared.
func (s *DataverseDataService[T]) toRemote(fields dataservice.Fields) map[string]any {
	record := make(map[string]any, len(fields))

	for field, value := range fields {
		if field == s.adapter.IDField || s.adapter.IsVirtual(field) {
			continue
		}
		column, ok := s.adapter.Columns[field]
		if !ok {
			continue
		}

		encoded := s.adapter.EncodeValue(field, value)

		if IsLookupColumn(column) {
			if encoded == nil {
				record[NavigationProperty(column)] = nil
			} else {
				record[column] = encoded
			}
			continue
		}

		record[column] = encoded
	}

	return record
}

func (s *DataverseDataService[T]) buildParams(opts *dataservice.ListOptions) map[string]any {
	// The parameter bag carries OData option values as plain strings; the
	// connector puts them on the wire verbatim.
	params := map[string]any{
		ParamSelect: strings.Join(s.adapter.SelectColumns(), ","),
		ParamCount:  true,
	}
	if opts == nil {
		opts = &dataservice.ListOptions{}
	}

	if opts.Top > 0 {
		params[ParamTop] = opts.Top
	}
	if opts.Skip > 0 {
		params[ParamSkip] = opts.Skip
	}

	if opts.OrderBy != "" {
		parts := strings.Fields(opts.OrderBy)
		field := parts[0]
		direction := "asc"
		if len(parts) > 1 {
			direction = parts[1]
		}
		column, ok := s.adapter.Columns[field]
		if !ok {
			column = field
		}
		params[ParamOrderBy] = column + " " + direction
	}

	var filters []string
	if s.adapter.BaseFilter != "" {
		filters = append(filters, s.adapter.BaseFilter)
	}
	if opts.Search != "" && len(s.adapter.SearchFields) > 0 {
		filters = append(filters, s.searchFilter(opts.Search))
	}
	if opts.Filter != "" {
		filters = append(filters, s.translateFilter(opts.Filter))
	}
	if len(filters) > 0 {
		params[ParamFilter] = strings.Join(filters, " and ")
	}

	return params
}

// searchFilter builds an OR of contains() clauses over the search columns.
// Single quotes in the term are doubled per OData escaping.
func (s *DataverseDataService[T]) searchFilter(search string) string {
	term := strings.ReplaceAll(search, "'", "''")
	clauses := make([]string, 0, len(s.adapter.SearchFields))
	for _, field := range s.adapter.SearchFields {
		column := s.adapter.Columns[field]
		clauses = append(clauses, fmt.Sprintf("contains(%s,'%s')", column, term))
	}
	return "(" + strings.Join(clauses, " or ") + ")"
}

// translateFilter rewrites application field names in a filter expression to
// their provider columns. Word-boundary matching avoids partial hits.
func (s *DataverseDataService[T]) translateFilter(filter string) string {
	fields := make([]string, 0, len(s.adapter.Columns))
	for field := range s.adapter.Columns {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	translated := filter
	for _, field := range fields {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(field) + `\b`)
		translated = pattern.ReplaceAllString(translated, s.adapter.Columns[field])
	}
	return translated
}

// failure maps a failed envelope into the taxonomy by status code: 404 is
// NotFound, rate limiting and server errors become transient so the retry
// policy picks them up, and everything else classifies by message.
func (s *DataverseDataService[T]) failure(result *OperationResult, operation string) error {
	if result.Success {
		return nil
	}

	status := 0
	message := ""
	if result.Error != nil {
		status = result.Error.Status
		message = result.Error.Message
	}
	if message == "" {
		message = fmt.Sprintf("%s failed on %s", operation, s.adapter.Table)
	}

	if status == 404 {
		return apperrors.NewNotFoundError(s.adapter.EntityName, "unknown")
	}
	if status == 429 || status >= 500 {
		return apperrors.NewTransientDependencyError(message)
	}

	s.logger.Debug("operation failed",
		zap.String("table", s.adapter.Table),
		zap.String("operation", operation),
		zap.Int("status", status),
	)
	return apperrors.Normalize(errors.New(message))
}

func asRecord(data any) map[string]any {
	switch v := data.(type) {
	case map[string]any:
		return v
	case dataservice.Fields:
		return v
	}
	return map[string]any{}
}

func asRecords(data any) []map[string]any {
	switch v := data.(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			out = append(out, asRecord(item))
		}
		return out
	}
	return nil
}
