package taxcalc

import (
	"time"

	"fjacquet/ngtax/internal/models"
)

// FilingStatusFor derives the status of a filing. An unfiled return is
// overdue once due has passed and pending before. A filed return is late if
// filedDate is after due, filed otherwise.
func (c *Calculator) FilingStatusFor(due time.Time, filed bool, filedDate *time.Time) models.FilingStatus {
	if !filed {
		if c.IsOverdue(due) {
			return models.StatusOverdue
		}
		return models.StatusPending
	}
	if filedDate != nil && filedDate.After(due) {
		return models.StatusLate
	}
	return models.StatusFiled
}
