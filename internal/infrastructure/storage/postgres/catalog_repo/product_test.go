package catalog_repo

import (
	"testing"

	"minipos/internal/core/id"
	"minipos/internal/domain"
)

func TestProductListQuery_SQL(t *testing.T) {
	repo := NewProductRepo(nil)
	pointID := id.New()

	tests := []struct {
		name    string
		filter  domain.ListFilter
		wantSQL string
	}{
		{
			name:   "live products of a point",
			filter: domain.ListFilter{PointID: &pointID},
			wantSQL: "SELECT id, deletion_mark, version, point_id, name, price, category, barcode, is_fast, image_url " +
				"FROM products WHERE deletion_mark = $1 AND point_id = $2",
		},
		{
			name:   "search by name",
			filter: domain.ListFilter{Search: "хлеб"},
			wantSQL: "SELECT id, deletion_mark, version, point_id, name, price, category, barcode, is_fast, image_url " +
				"FROM products WHERE deletion_mark = $1 AND name ILIKE $2",
		},
		{
			name:   "by category including deleted",
			filter: domain.ListFilter{Category: "Напитки", IncludeDeleted: true},
			wantSQL: "SELECT id, deletion_mark, version, point_id, name, price, category, barcode, is_fast, image_url " +
				"FROM products WHERE category = $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := repo.listQuery(tt.filter).ToSql()
			if err != nil {
				t.Fatalf("ToSql failed: %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", tt.wantSQL, sql)
			}
		})
	}
}

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"name", "name ASC"},
		{"-price", "price DESC"},
		{"+category", "category ASC"},
		{"", "name ASC"},
		{"-version; DROP TABLE products", "name ASC"},
	}

	for _, tt := range tests {
		if got := parseOrderBy(tt.in); got != tt.want {
			t.Errorf("parseOrderBy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
