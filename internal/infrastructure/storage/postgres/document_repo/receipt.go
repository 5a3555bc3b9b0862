// Package document_repo provides PostgreSQL implementations for
// document repositories.
package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"minipos/internal/core/apperror"
	"minipos/internal/core/id"
	"minipos/internal/domain"
	"minipos/internal/domain/documents/receipt"
	"minipos/internal/infrastructure/storage/postgres"
)

var receiptColumns = []string{
	"id", "deletion_mark", "version",
	"created_at", "updated_at", "created_by", "updated_by",
	"number", "point_id", "cashier_id", "cashier_name",
	"client_id", "client_name",
	"total", "discount", "payment_type", "status", "cancel_reason",
}

var receiptItemColumns = []string{
	"line_id", "receipt_id", "line_no",
	"product_id", "product_name", "qty", "price",
}

// ReceiptRepo is the PostgreSQL implementation of receipt.Repository.
type ReceiptRepo struct {
	txManager *postgres.TxManager
}

var _ receipt.Repository = (*ReceiptRepo)(nil)

// NewReceiptRepo creates a new receipt repository.
func NewReceiptRepo(txManager *postgres.TxManager) *ReceiptRepo {
	return &ReceiptRepo{txManager: txManager}
}

func (r *ReceiptRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *ReceiptRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(receiptColumns...).From("receipts")
}

// Create inserts a receipt header and its items.
// Callers are expected to wrap this in a transaction.
func (r *ReceiptRepo) Create(ctx context.Context, doc *receipt.Receipt) error {
	q := r.builder().
		Insert("receipts").
		Columns(receiptColumns...).
		Values(doc.ID, doc.DeletionMark, doc.Version,
			doc.CreatedAt, doc.UpdatedAt, doc.CreatedBy, doc.UpdatedBy,
			doc.Number, doc.PointID, doc.CashierID, doc.CashierName,
			doc.ClientID, doc.ClientName,
			doc.Total, doc.Discount, doc.PaymentType, doc.Status, doc.CancelReason)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}

	return r.insertItems(ctx, doc.ID, doc.Items)
}

func (r *ReceiptRepo) insertItems(ctx context.Context, receiptID id.ID, items []receipt.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.builder().Insert("receipt_items").Columns(receiptItemColumns...)
	for i, item := range items {
		q = q.Values(item.LineID, receiptID, i+1,
			item.ProductID, item.ProductName, item.Qty, item.Price)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build items insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert receipt items: %w", err)
	}
	return nil
}

// GetByID retrieves a receipt including items.
func (r *ReceiptRepo) GetByID(ctx context.Context, receiptID id.ID) (*receipt.Receipt, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": receiptID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var doc receipt.Receipt
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &doc, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("receipt", receiptID.String())
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}

	if err := r.loadItems(ctx, []*receipt.Receipt{&doc}); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update modifies receipt header fields with optimistic locking.
// Items are immutable after creation.
func (r *ReceiptRepo) Update(ctx context.Context, doc *receipt.Receipt) error {
	q := r.builder().
		Update("receipts").
		Set("updated_at", doc.UpdatedAt).
		Set("updated_by", doc.UpdatedBy).
		Set("client_id", doc.ClientID).
		Set("client_name", doc.ClientName).
		Set("status", doc.Status).
		Set("cancel_reason", doc.CancelReason).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": doc.ID}).
		Where(squirrel.Eq{"version": doc.Version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("receipt", doc.ID)
	}

	doc.SetVersion(doc.Version + 1)
	return nil
}

// List retrieves receipts with items, newest first.
func (r *ReceiptRepo) List(ctx context.Context, filter receipt.Filter) (domain.ListResult[*receipt.Receipt], error) {
	result := domain.ListResult[*receipt.Receipt]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect().Where(squirrel.Eq{"deletion_mark": false})

	if filter.PointID != nil {
		q = q.Where(squirrel.Eq{"point_id": *filter.PointID})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.CreatedFrom != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		q = q.Where(squirrel.Lt{"created_at": *filter.CreatedTo})
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

	q = q.OrderBy("created_at DESC")
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
		return result, fmt.Errorf("list receipts: %w", err)
	}

	if err := r.loadItems(ctx, result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// ListSince retrieves all receipts for a point created at or after the
// given moment, oldest first. Status filtering is left to the caller so
// analytics can apply its own rules.
func (r *ReceiptRepo) ListSince(ctx context.Context, pointID id.ID, since time.Time) ([]*receipt.Receipt, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Eq{"point_id": pointID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var docs []*receipt.Receipt
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &docs, sql, args...); err != nil {
		return nil, fmt.Errorf("list receipts since: %w", err)
	}

	if err := r.loadItems(ctx, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// itemRow carries the receipt_id join column alongside the item fields.
type itemRow struct {
	receipt.Item
	ReceiptID id.ID `db:"receipt_id"`
	LineNo    int   `db:"line_no"`
}

// loadItems fetches items for a batch of receipts in one query.
func (r *ReceiptRepo) loadItems(ctx context.Context, docs []*receipt.Receipt) error {
	if len(docs) == 0 {
		return nil
	}

	ids := make([]id.ID, 0, len(docs))
	byID := make(map[id.ID]*receipt.Receipt, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
		byID[doc.ID] = doc
		doc.Items = doc.Items[:0]
	}

	q := r.builder().
		Select(receiptItemColumns...).
		From("receipt_items").
		Where(squirrel.Eq{"receipt_id": ids}).
		OrderBy("receipt_id", "line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build items query: %w", err)
	}

	var rows []itemRow
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return fmt.Errorf("load receipt items: %w", err)
	}

	for _, row := range rows {
		if doc, ok := byID[row.ReceiptID]; ok {
			doc.Items = append(doc.Items, row.Item)
		}
	}
	return nil
}
