package appointment

import (
	"time"

	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/timegrid"
)

// statusSnapshot is the before/after shape audit entries record for
// plain status transitions.
func statusSnapshot(ap *models.Appointment) map[string]any {
	return map[string]any{
		"status": ap.Status,
	}
}

func slotSnapshot(ap *models.Appointment) map[string]any {
	return map[string]any{
		"scheduled_date": formatDate(ap.ScheduledDate),
		"scheduled_time": ap.ScheduledTime,
		"stylist_id":     ap.StylistID,
	}
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := timegrid.ParseDate(s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(timegrid.DateLayout)
}
