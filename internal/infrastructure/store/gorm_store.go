package store

import (
	"context"
	"fmt"
	"strings"

	"matchmaker-backend/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

const defaultBatchSize = 100

// GormStore reads and writes projects through GORM (Postgres in production,
// SQLite in tests).
type GormStore struct {
	DB        *gorm.DB
	BatchSize int
}

func (s *GormStore) FindProjects(ctx context.Context, q Query) ([]domain.Project, error) {
	if err := validate(q); err != nil {
		return nil, err
	}
	tx := s.DB.WithContext(ctx).Model(&domain.Project{})
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	if len(q.Predicates) > 0 {
		where, args, err := s.conditions(q.Predicates).ToSql()
		if err != nil {
			return nil, fmt.Errorf("store: build conditions: %w", err)
		}
		tx = tx.Where(where, args...)
	}

	var projects []domain.Project
	if err := tx.Order("project_id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *GormStore) conditions(preds []Predicate) sq.And {
	and := make(sq.And, 0, len(preds))
	for _, p := range preds {
		switch p.Op {
		case OpEq:
			and = append(and, sq.Eq{p.Column: p.Value})
		case OpGt:
			and = append(and, sq.Gt{p.Column: p.Value})
		case OpGte:
			and = append(and, sq.GtOrEq{p.Column: p.Value})
		case OpLte:
			and = append(and, sq.LtOrEq{p.Column: p.Value})
		case OpILike:
			pattern := "%" + fmt.Sprint(p.Value) + "%"
			if s.DB.Dialector.Name() == "postgres" {
				and = append(and, sq.ILike{p.Column: pattern})
			} else {
				and = append(and, sq.Expr("LOWER("+p.Column+") LIKE ?", strings.ToLower(pattern)))
			}
		}
	}
	return and
}

// InsertProjects writes rows in batches and returns how many were inserted.
func (s *GormStore) InsertProjects(ctx context.Context, projects []domain.Project) (int, error) {
	if len(projects) == 0 {
		return 0, nil
	}
	size := s.BatchSize
	if size <= 0 {
		size = defaultBatchSize
	}
	res := s.DB.WithContext(ctx).CreateInBatches(&projects, size)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
