package store

import (
	"context"
	"fmt"

	"matchmaker-backend/internal/domain"
)

// Op is a comparison operator understood by every store backend.
type Op string

const (
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLte Op = "lte"
	// OpILike matches rows whose column contains Value, ignoring case.
	// Value is the bare substring; backends add their own wildcards.
	OpILike Op = "ilike"
)

// Predicate is a single column condition. Predicates in a Query are ANDed.
type Predicate struct {
	Column string
	Op     Op
	Value  interface{}
}

// Query selects project rows. Empty Columns means all columns.
type Query struct {
	Columns    []string
	Predicates []Predicate
}

// Select starts a query returning only the given columns.
func Select(columns ...string) *Query {
	return &Query{Columns: columns}
}

func (q *Query) Eq(column string, value interface{}) *Query {
	return q.where(column, OpEq, value)
}

func (q *Query) Gt(column string, value interface{}) *Query {
	return q.where(column, OpGt, value)
}

func (q *Query) Gte(column string, value interface{}) *Query {
	return q.where(column, OpGte, value)
}

func (q *Query) Lte(column string, value interface{}) *Query {
	return q.where(column, OpLte, value)
}

func (q *Query) ILike(column string, substring string) *Query {
	return q.where(column, OpILike, substring)
}

func (q *Query) where(column string, op Op, value interface{}) *Query {
	q.Predicates = append(q.Predicates, Predicate{Column: column, Op: op, Value: value})
	return q
}

// ProjectStore is the read/write surface both backends share.
type ProjectStore interface {
	FindProjects(ctx context.Context, q Query) ([]domain.Project, error)
	InsertProjects(ctx context.Context, projects []domain.Project) (int, error)
	Ping(ctx context.Context) error
}

// columns that may appear in queries; everything else is rejected before it
// reaches SQL or a URL.
var knownColumns = map[string]bool{
	"project_id": true, "project_name": true, "region": true, "city": true,
	"district": true, "status": true, "unit_types": true, "available_units": true,
	"min_available_price": true, "max_available_price": true,
	"min_available_area": true, "max_available_area": true,
}

func validate(q Query) error {
	for _, c := range q.Columns {
		if !knownColumns[c] {
			return fmt.Errorf("store: unknown column %q", c)
		}
	}
	for _, p := range q.Predicates {
		if !knownColumns[p.Column] {
			return fmt.Errorf("store: unknown column %q", p.Column)
		}
		switch p.Op {
		case OpEq, OpGt, OpGte, OpLte, OpILike:
		default:
			return fmt.Errorf("store: unsupported operator %q", p.Op)
		}
	}
	return nil
}
