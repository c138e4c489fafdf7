package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

// MemoryRepository is a map-backed Repository used by use-case tests.
// WithinTx snapshots the whole store and restores it when the callback
// fails, so all-or-nothing semantics hold the same way they do on the
// relational implementation.
type MemoryRepository struct {
	mu sync.Mutex

	appointments map[uuid.UUID]models.Appointment
	customers    map[uuid.UUID]models.Customer
	branches     map[uuid.UUID]models.Branch
	stylists     []models.Stylist
	breaks       []models.StylistBreak
	blockedSlots []models.StylistBlockedSlot
	auditLogs    []models.AuditLog
}

var _ domain.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		appointments: make(map[uuid.UUID]models.Appointment),
		customers:    make(map[uuid.UUID]models.Customer),
		branches:     make(map[uuid.UUID]models.Branch),
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (r *MemoryRepository) SeedAppointment(ap models.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap.Customer = nil
	r.appointments[ap.ID] = ap
}

func (r *MemoryRepository) SeedCustomer(c models.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID] = c
}

func (r *MemoryRepository) SeedBranch(b models.Branch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.branches[b.ID] = b
}

func (r *MemoryRepository) SeedStylist(s models.Stylist) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stylists = append(r.stylists, s)
}

func (r *MemoryRepository) SeedBreak(b models.StylistBreak) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breaks = append(r.breaks, b)
}

func (r *MemoryRepository) SeedBlockedSlot(s models.StylistBlockedSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blockedSlots = append(r.blockedSlots, s)
}

// AuditLogs returns what was appended, for assertions.
func (r *MemoryRepository) AuditLogs() []models.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AuditLog(nil), r.auditLogs...)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *MemoryRepository) GetAppointment(
	_ context.Context,
	tenantID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[appointmentID]
	if !ok || ap.TenantID != tenantID || ap.DeletedAt.Valid {
		return nil, apperr.NotFound("Appointment")
	}
	if ap.CustomerID != nil {
		if c, ok := r.customers[*ap.CustomerID]; ok {
			ap.Customer = &c
		}
	}
	return &ap, nil
}

func (r *MemoryRepository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *ap
	stored.Customer = nil
	r.appointments[ap.ID] = stored
	return nil
}

func (r *MemoryRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *ap
	stored.Customer = nil
	r.appointments[ap.ID] = stored
	return nil
}

func (r *MemoryRepository) ListStylistDayAppointments(
	_ context.Context,
	tenantID uuid.UUID,
	branchID uuid.UUID,
	stylistID uuid.UUID,
	date datatypes.Date,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.TenantID != tenantID || ap.BranchID != branchID || ap.DeletedAt.Valid {
			continue
		}
		if ap.StylistID == nil || *ap.StylistID != stylistID {
			continue
		}
		if !sameDate(ap.ScheduledDate, date) || inactive(ap.Status) {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime < out[j].ScheduledTime
	})
	return out, nil
}

func (r *MemoryRepository) ListWindowAppointments(
	_ context.Context,
	tenantID uuid.UUID,
	branchID uuid.UUID,
	from datatypes.Date,
	to datatypes.Date,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.TenantID != tenantID || ap.BranchID != branchID || ap.DeletedAt.Valid {
			continue
		}
		if inactive(ap.Status) || !withinDates(ap.ScheduledDate, from, to) {
			continue
		}
		if ap.CustomerID != nil {
			if c, ok := r.customers[*ap.CustomerID]; ok {
				ap.Customer = &c
			}
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := time.Time(out[i].ScheduledDate), time.Time(out[j].ScheduledDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].ScheduledTime < out[j].ScheduledTime
	})
	return out, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *MemoryRepository) GetCustomer(
	_ context.Context,
	tenantID uuid.UUID,
	customerID uuid.UUID,
) (*models.Customer, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[customerID]
	if !ok || c.TenantID != tenantID {
		return nil, apperr.NotFound("Customer")
	}
	return &c, nil
}

func (r *MemoryRepository) UpdateCustomer(_ context.Context, c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID] = *c
	return nil
}

// --------------------------------------------------
// Branch / Stylist
// --------------------------------------------------

func (r *MemoryRepository) GetBranch(
	_ context.Context,
	tenantID uuid.UUID,
	branchID uuid.UUID,
) (*models.Branch, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.branches[branchID]
	if !ok || b.TenantID != tenantID {
		return nil, apperr.NotFound("Branch")
	}
	return &b, nil
}

func (r *MemoryRepository) ListActiveStylists(
	_ context.Context,
	tenantID uuid.UUID,
	branchID uuid.UUID,
) ([]models.Stylist, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Stylist
	for _, s := range r.stylists {
		if s.TenantID == tenantID && s.BranchID == branchID && s.Active {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *MemoryRepository) ListStylistBreaks(
	_ context.Context,
	tenantID uuid.UUID,
	stylistIDs []uuid.UUID,
) ([]models.StylistBreak, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := idSet(stylistIDs)
	var out []models.StylistBreak
	for _, b := range r.breaks {
		if b.TenantID == tenantID && ids[b.StylistID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListBlockedSlots(
	_ context.Context,
	tenantID uuid.UUID,
	stylistIDs []uuid.UUID,
	from datatypes.Date,
	to datatypes.Date,
) ([]models.StylistBlockedSlot, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := idSet(stylistIDs)
	var out []models.StylistBlockedSlot
	for _, s := range r.blockedSlots {
		if s.TenantID == tenantID && ids[s.StylistID] && withinDates(s.BlockedDate, from, to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListStylistDayBlocks(
	_ context.Context,
	tenantID uuid.UUID,
	stylistID uuid.UUID,
	date datatypes.Date,
) ([]models.StylistBlockedSlot, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.StylistBlockedSlot
	for _, s := range r.blockedSlots {
		if s.TenantID == tenantID && s.StylistID == stylistID && sameDate(s.BlockedDate, date) {
			out = append(out, s)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *MemoryRepository) AppendAuditLog(_ context.Context, entry *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auditLogs = append(r.auditLogs, *entry)
	return nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *MemoryRepository) WithinTx(
	_ context.Context,
	fn func(tx domain.Repository) error,
) error {

	r.mu.Lock()
	snapshot := r.copyState()
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.restoreState(snapshot)
		r.mu.Unlock()
		return err
	}
	return nil
}

type memoryState struct {
	appointments map[uuid.UUID]models.Appointment
	customers    map[uuid.UUID]models.Customer
	auditLogs    []models.AuditLog
}

func (r *MemoryRepository) copyState() memoryState {
	st := memoryState{
		appointments: make(map[uuid.UUID]models.Appointment, len(r.appointments)),
		customers:    make(map[uuid.UUID]models.Customer, len(r.customers)),
		auditLogs:    append([]models.AuditLog(nil), r.auditLogs...),
	}
	for id, ap := range r.appointments {
		st.appointments[id] = ap
	}
	for id, c := range r.customers {
		st.customers[id] = c
	}
	return st
}

func (r *MemoryRepository) restoreState(st memoryState) {
	r.appointments = st.appointments
	r.customers = st.customers
	r.auditLogs = st.auditLogs
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func sameDate(a, b datatypes.Date) bool {
	ay, am, ad := time.Time(a).Date()
	by, bm, bd := time.Time(b).Date()
	return ay == by && am == bm && ad == bd
}

func withinDates(d, from, to datatypes.Date) bool {
	t := time.Time(d)
	return !t.Before(time.Time(from)) && !t.After(time.Time(to))
}

func inactive(status string) bool {
	for _, s := range domain.InactiveStatuses {
		if status == s {
			return true
		}
	}
	return false
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
