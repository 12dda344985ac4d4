package repository

import (
	"slices"

	"metadata-catalog/internal/paging"

	"gorm.io/gorm"
)

// keysetPage reads at most limit rows after/before the cursor ordered by column.
// One extra row is fetched to learn whether more rows exist in the direction
// of travel. Rows are always returned in ascending order.
func keysetPage[T any](q *gorm.DB, column string, cursor paging.Cursor, limit int) ([]T, bool, error) {
	switch {
	case cursor.Before != "":
		q = q.Where(column+" < ?", cursor.Before).Order(column + " DESC")
	case cursor.After != "":
		q = q.Where(column+" > ?", cursor.After).Order(column + " ASC")
	default:
		q = q.Order(column + " ASC")
	}

	var rows []T
	if err := q.Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, false, err
	}

	more := len(rows) > limit
	if more {
		rows = rows[:limit]
	}
	if cursor.Before != "" {
		slices.Reverse(rows)
	}
	return rows, more, nil
}
