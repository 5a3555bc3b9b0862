package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"minipos/internal/core/apperror"
	"minipos/internal/core/id"
	"minipos/internal/domain"
	"minipos/internal/domain/catalogs/point"
	"minipos/internal/infrastructure/storage/postgres"
)

var pointColumns = []string{
	"id", "deletion_mark", "version",
	"name", "address",
}

// PointRepo is the PostgreSQL implementation of point.Repository.
type PointRepo struct {
	txManager *postgres.TxManager
}

var _ point.Repository = (*PointRepo)(nil)

// NewPointRepo creates a new point repository.
func NewPointRepo(txManager *postgres.TxManager) *PointRepo {
	return &PointRepo{txManager: txManager}
}

func (r *PointRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *PointRepo) Create(ctx context.Context, p *point.Point) error {
	q := r.builder().
		Insert("points").
		Columns(pointColumns...).
		Values(p.ID, p.DeletionMark, p.Version, p.Name, p.Address)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert point: %w", err)
	}
	return nil
}

func (r *PointRepo) GetByID(ctx context.Context, pointID id.ID) (*point.Point, error) {
	q := r.builder().
		Select(pointColumns...).
		From("points").
		Where(squirrel.Eq{"id": pointID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p point.Point
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("point", pointID.String())
		}
		return nil, fmt.Errorf("get point: %w", err)
	}
	return &p, nil
}

func (r *PointRepo) Update(ctx context.Context, p *point.Point) error {
	q := r.builder().
		Update("points").
		Set("name", p.Name).
		Set("address", p.Address).
		Set("deletion_mark", p.DeletionMark).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": p.ID}).
		Where(squirrel.Eq{"version": p.Version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update point: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("point", p.ID)
	}

	p.SetVersion(p.Version + 1)
	return nil
}

func (r *PointRepo) SetDeletionMark(ctx context.Context, pointID id.ID, marked bool) error {
	q := r.builder().
		Update("points").
		Set("deletion_mark", marked).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": pointID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("set deletion mark: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("point", pointID.String())
	}
	return nil
}

func (r *PointRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*point.Point], error) {
	result := domain.ListResult[*point.Point]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.builder().Select(pointColumns...).From("points")
	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"name": "%" + filter.Search + "%"})
	}

	countQ := r.builder().Select("COUNT(*)").FromSelect(q, "sub")
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	q = q.OrderBy(parseOrderBy(filter.OrderBy))
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list points: %w", err)
	}
	return result, nil
}
