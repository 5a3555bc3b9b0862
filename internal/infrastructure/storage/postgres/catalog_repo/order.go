package catalog_repo

import "strings"

// orderableColumns whitelists sort fields across catalog tables.
// Untrusted input never reaches the ORDER BY clause directly.
var orderableColumns = map[string]struct{}{
	"id":       {},
	"name":     {},
	"price":    {},
	"category": {},
	"address":  {},
	"phone":    {},
}

// parseOrderBy converts a "-field" style selector into an ORDER BY
// clause. Unknown fields fall back to name ascending.
func parseOrderBy(orderBy string) string {
	direction := "ASC"
	field := orderBy
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(orderBy, "-")
	} else if strings.HasPrefix(orderBy, "+") {
		field = strings.TrimPrefix(orderBy, "+")
	}

	field = strings.TrimSpace(field)
	if _, ok := orderableColumns[field]; !ok {
		return "name ASC"
	}
	return field + " " + direction
}
