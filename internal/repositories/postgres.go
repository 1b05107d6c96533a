// Package repositories provides the Postgres-backed store. Tables and columns
// mirror the remote schema exactly (same names, same choice integer codes), so
// one ColumnAdapter drives both backends and records can move between them.
package repositories

import (
	"context"
	"regexp"
	"strings"

	"equipment-system/internal/dataservice"
	"equipment-system/internal/dataverse"
	apperrors "equipment-system/pkg/errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var eqFilterPattern = regexp.MustCompile(`^(\w+)\s+eq\s+'([^']*)'$`)

// PostgresDataService implements dataservice.DataService over a pgx pool.
type PostgresDataService[T any] struct {
	pool    *pgxpool.Pool
	adapter *dataverse.ColumnAdapter
	logger  *zap.Logger
	newID   func() string
}

func NewPostgresDataService[T any](pool *pgxpool.Pool, adapter *dataverse.ColumnAdapter, logger *zap.Logger) *PostgresDataService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresDataService[T]{
		pool:    pool,
		adapter: adapter,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

func (s *PostgresDataService[T]) GetAll(ctx context.Context, opts *dataservice.ListOptions) (*dataservice.PagedResult[T], error) {
	if opts == nil {
		opts = &dataservice.ListOptions{}
	}
	predicates := s.predicates(opts)

	countQuery := psql.Select("COUNT(*)").From(s.adapter.Table)
	for _, p := range predicates {
		countQuery = countQuery.Where(p)
	}
	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, err
	}
	var totalCount int
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&totalCount); err != nil {
		return nil, err
	}

	query := psql.Select(s.adapter.SelectColumns()...).From(s.adapter.Table)
	for _, p := range predicates {
		query = query.Where(p)
	}
	if opts.OrderBy != "" {
		query = query.OrderBy(s.orderClause(opts.OrderBy))
	}
	if opts.Top > 0 {
		query = query.Limit(uint64(opts.Top))
	}
	if opts.Skip > 0 {
		query = query.Offset(uint64(opts.Skip))
	}

	sql, args, err = query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	data := make([]T, 0, len(records))
	for _, row := range records {
		item, err := s.fromRow(row)
		if err != nil {
			return nil, err
		}
		data = append(data, *item)
	}

	returned := opts.Skip + len(data)
	return &dataservice.PagedResult[T]{
		Data:       data,
		TotalCount: totalCount,
		HasMore:    opts.Top > 0 && returned < totalCount,
	}, nil
}

func (s *PostgresDataService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := psql.Select(s.adapter.SelectColumns()...).
		From(s.adapter.Table).
		Where(squirrel.Eq{s.adapter.IDColumn: id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	record, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFoundError(s.adapter.EntityName, id)
	}
	if err != nil {
		return nil, err
	}
	return s.fromRow(record)
}

func (s *PostgresDataService[T]) Create(ctx context.Context, fields dataservice.Fields) (*T, error) {
	record := s.toRow(fields)
	id := s.newID()
	record[s.adapter.IDColumn] = id

	query := psql.Insert(s.adapter.Table).SetMap(record)
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresDataService[T]) Update(ctx context.Context, id string, fields dataservice.Fields) (*T, error) {
	record := s.toRow(fields)
	if len(record) == 0 {
		return s.GetByID(ctx, id)
	}

	query := psql.Update(s.adapter.Table).
		SetMap(record).
		Where(squirrel.Eq{s.adapter.IDColumn: id})
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError(s.adapter.EntityName, id)
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresDataService[T]) Delete(ctx context.Context, id string) error {
	query := psql.Delete(s.adapter.Table).Where(squirrel.Eq{s.adapter.IDColumn: id})
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(s.adapter.EntityName, id)
	}
	return nil
}

// predicates builds the WHERE clauses: the adapter's base filter, free-text
// search over the search columns, and the "field eq 'value'" mini-grammar.
func (s *PostgresDataService[T]) predicates(opts *dataservice.ListOptions) []squirrel.Sqlizer {
	var out []squirrel.Sqlizer

	if s.adapter.BaseFilter != "" {
		if p := translateBaseFilter(s.adapter.BaseFilter); p != nil {
			out = append(out, p)
		}
	}

	if opts.Search != "" && len(s.adapter.SearchFields) > 0 {
		or := squirrel.Or{}
		for _, field := range s.adapter.SearchFields {
			column := s.adapter.Columns[field]
			or = append(or, squirrel.ILike{column: "%" + opts.Search + "%"})
		}
		out = append(out, or)
	}

	if opts.Filter != "" {
		if match := eqFilterPattern.FindStringSubmatch(opts.Filter); match != nil {
			field, value := match[1], match[2]
			if column, ok := s.adapter.Columns[field]; ok {
				out = append(out, squirrel.Eq{column: s.adapter.EncodeValue(field, value)})
			}
		}
	}

	return out
}

// translateBaseFilter converts the adapter's "column ne null" expression into
// SQL. Other shapes are not used by any adapter.
func translateBaseFilter(filter string) squirrel.Sqlizer {
	if column, ok := strings.CutSuffix(filter, " ne null"); ok {
		return squirrel.Expr(column + " IS NOT NULL")
	}
	return nil
}

func (s *PostgresDataService[T]) orderClause(orderBy string) string {
	parts := strings.Fields(orderBy)
	field := parts[0]
	direction := "ASC"
	if len(parts) > 1 && strings.EqualFold(parts[1], "desc") {
		direction = "DESC"
	}
	column, ok := s.adapter.Columns[field]
	if !ok {
		column = field
	}
	return column + " " + direction + " NULLS LAST"
}

// fromRow decodes one scanned row into the entity type. Virtual fields have
// no column and decode to nil.
func (s *PostgresDataService[T]) fromRow(row map[string]any) (*T, error) {
	fields := make(dataservice.Fields, len(s.adapter.Columns))
	for field, column := range s.adapter.Columns {
		value, ok := row[column]
		if !ok {
			fields[field] = nil
			continue
		}
		fields[field] = s.adapter.DecodeValue(field, value)
	}
	return dataservice.FromFields[T](fields)
}

// toRow encodes a partial patch into column values. Unlike the remote
// backend, lookup references are plain foreign-key columns here, so a nil
// clears the column directly.
func (s *PostgresDataService[T]) toRow(fields dataservice.Fields) map[string]any {
	record := make(map[string]any, len(fields))
	for field, value := range fields {
		if field == s.adapter.IDField || s.adapter.IsVirtual(field) {
			continue
		}
		column, ok := s.adapter.Columns[field]
		if !ok {
			continue
		}
		record[column] = s.adapter.EncodeValue(field, value)
	}
	return record
}
