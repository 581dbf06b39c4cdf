// Package database builds parameterized list queries from typed options.
// Identifiers are sanitized through pgx so repository filters can never
// smuggle SQL; values always travel as positional parameters.
package database

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThan        ConditionType = ">"
	LessThan           ConditionType = "<"
	LessThanOrEqual    ConditionType = "<="
	GreaterThanOrEqual ConditionType = ">="
	Like               ConditionType = "LIKE"
	ILike              ConditionType = "ILIKE"
	In                 ConditionType = "IN"
)

// unsetPagination marks Limit/Offset as not requested, since 0 is a valid value for both.
const unsetPagination = -1

// Condition is a single WHERE predicate, ANDed with its siblings.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

// WhereCond builds a condition on a column. The field is sanitized at build
// time; the value becomes a query parameter.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

type ListQueryOptions struct {
	Table      string
	Columns    []string
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

type ListQueryOption func(*ListQueryOptions)

func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{
		Table:  table,
		Limit:  unsetPagination,
		Offset: unsetPagination,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select. Without it the query selects *.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithCondition appends one condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithConditions replaces the condition list.
func WithConditions(conds ...Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = conds
	}
}

// WithOrderBy sets the ordering column and direction.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithLimit sets the limit. Accepts 0; negative values leave it unset.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0; negative values leave it unset.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// BuildListQuery constructs the SQL text and argument slice from options.
//
//	opts := NewListQueryOptions("projects",
//		WithColumns("id", "owner_id", "name"),
//		WithCondition(WhereCond("owner_id", Equal, ownerID)),
//		WithCondition(WhereCond("name", ILike, "%roadmap%")),
//		WithOrderBy("created_at", "DESC"),
//		WithLimit(20),
//		WithOffset(0),
//	)
//	query, args := BuildListQuery(opts)
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder
	query.WriteString(buildSelectClause(options))
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	whereClause, args, nextParam := buildWhereClause(options.Conditions, 1)
	if whereClause != "" {
		query.WriteString(" ")
		query.WriteString(whereClause)
	}

	if options.OrderBy != "" {
		query.WriteString(" ORDER BY ")
		query.WriteString(sanitizeQualifiedIdentifier(options.OrderBy))
		if dir := strings.ToUpper(options.OrderDir); dir == "ASC" || dir == "DESC" {
			query.WriteString(" ")
			query.WriteString(dir)
		}
	}

	if options.Limit != unsetPagination {
		query.WriteString(fmt.Sprintf(" LIMIT $%d", nextParam))
		args = append(args, options.Limit)
		nextParam++
	}
	if options.Offset != unsetPagination {
		query.WriteString(fmt.Sprintf(" OFFSET $%d", nextParam))
		args = append(args, options.Offset)
	}

	return query.String(), args
}

func buildSelectClause(options *ListQueryOptions) string {
	if len(options.Columns) == 0 {
		return "SELECT * "
	}
	cols := make([]string, len(options.Columns))
	for i, col := range options.Columns {
		if strings.Contains(col, ".") {
			cols[i] = sanitizeQualifiedIdentifier(col)
		} else {
			cols[i] = sanitizeIdentifier(col)
		}
	}
	return fmt.Sprintf("SELECT %s ", strings.Join(cols, ", "))
}

// buildWhereClause renders conditions as an AND chain, numbering parameters
// from startParamIndex. Conditions with empty fields or empty IN slices are
// skipped rather than producing invalid SQL.
func buildWhereClause(inputConditions []Condition, startParamIndex int) (string, []any, int) {
	rendered := make([]string, 0, len(inputConditions))
	args := []any{}
	paramCount := startParamIndex

	for _, cond := range inputConditions {
		if cond.Field == "" {
			continue
		}
		field := sanitizeIdentifier(cond.Field)

		if cond.Type == In {
			clause, inArgs, next := buildInCondition(field, cond.Value, paramCount)
			if clause == "" {
				continue
			}
			rendered = append(rendered, clause)
			args = append(args, inArgs...)
			paramCount = next
			continue
		}

		rendered = append(rendered, fmt.Sprintf("%s %s $%d", field, cond.Type, paramCount))
		args = append(args, cond.Value)
		paramCount++
	}

	if len(rendered) == 0 {
		return "", args, paramCount
	}
	return "WHERE " + strings.Join(rendered, " AND "), args, paramCount
}

func buildInCondition(field string, value any, paramCount int) (string, []any, int) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return "", nil, paramCount
	}

	placeholders := make([]string, rv.Len())
	args := make([]any, rv.Len())
	for i := range rv.Len() {
		placeholders[i] = fmt.Sprintf("$%d", paramCount)
		args[i] = rv.Index(i).Interface()
		paramCount++
	}
	return fmt.Sprintf("%s IN (%s)", field, strings.Join(placeholders, ", ")), args, paramCount
}

func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// sanitizeQualifiedIdentifier quotes dotted identifiers like "p.created_at" part by part.
func sanitizeQualifiedIdentifier(ident string) string {
	return pgx.Identifier(strings.Split(ident, ".")).Sanitize()
}
