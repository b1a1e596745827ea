package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/bizdesk/backend/internal/domain/shared"
)

// applyFilter applies search, pagination and ordering from the filter.
// searchColumn is the column Search matches against; empty disables search.
// defaultOrder is used when the caller did not ask for an explicit ordering.
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumn, defaultOrder string) *gorm.DB {
	if filter.Search != "" && searchColumn != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where(searchColumn+" LIKE ?", searchPattern)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else if defaultOrder != "" {
		query = query.Order(defaultOrder)
	}

	return query
}
