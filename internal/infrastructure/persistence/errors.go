package persistence

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bizdesk/backend/internal/domain/shared"
)

// mapStoreError translates gorm failures into domain errors. Missing rows
// become shared.ErrNotFound; anything else is reported as a retryable
// STORE_UNAVAILABLE failure with the cause kept for logging.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return shared.NewStoreUnavailableError(err)
}
