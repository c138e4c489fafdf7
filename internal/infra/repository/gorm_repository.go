package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

// GormRepository is the relational implementation of the scheduling
// core's persistence contract. WithinTx maps to a database transaction;
// the isolation level the store runs it under must be snapshot or
// stronger for the conflict-check-then-write sequences to be safe.
type GormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*GormRepository)(nil)

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *GormRepository) GetAppointment(
	ctx context.Context,
	tenantID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ? AND tenant_id = ?", appointmentID, tenantID).
		First(&ap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Appointment")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *GormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *GormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *GormRepository) ListStylistDayAppointments(
	ctx context.Context,
	tenantID uuid.UUID,
	branchID uuid.UUID,
	stylistID uuid.UUID,
	date datatypes.Date,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("tenant_id = ? AND branch_id = ? AND stylist_id = ? AND scheduled_date = ?",
			tenantID, branchID, stylistID, date).
		Where("status NOT IN ?", domain.InactiveStatuses).
		Order("scheduled_time ASC").
		Find(&aps).Error
	return aps, err
}

func (r *GormRepository) ListWindowAppointments(
	ctx context.Context,
	tenantID uuid.UUID,
	branchID uuid.UUID,
	from datatypes.Date,
	to datatypes.Date,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("tenant_id = ? AND branch_id = ?", tenantID, branchID).
		Where("scheduled_date BETWEEN ? AND ?", from, to).
		Where("status NOT IN ?", domain.InactiveStatuses).
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&aps).Error
	return aps, err
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *GormRepository) GetCustomer(
	ctx context.Context,
	tenantID uuid.UUID,
	customerID uuid.UUID,
) (*models.Customer, error) {

	var c models.Customer
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", customerID, tenantID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Customer")
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormRepository) UpdateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// --------------------------------------------------
// Branch / Stylist
// --------------------------------------------------

func (r *GormRepository) GetBranch(
	ctx context.Context,
	tenantID uuid.UUID,
	branchID uuid.UUID,
) (*models.Branch, error) {

	var b models.Branch
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", branchID, tenantID).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Branch")
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormRepository) ListActiveStylists(
	ctx context.Context,
	tenantID uuid.UUID,
	branchID uuid.UUID,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND branch_id = ? AND active = ?", tenantID, branchID, true).
		Order("name ASC, id ASC").
		Find(&stylists).Error
	return stylists, err
}

func (r *GormRepository) ListStylistBreaks(
	ctx context.Context,
	tenantID uuid.UUID,
	stylistIDs []uuid.UUID,
) ([]models.StylistBreak, error) {

	if len(stylistIDs) == 0 {
		return nil, nil
	}

	var breaks []models.StylistBreak
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND stylist_id IN ?", tenantID, stylistIDs).
		Order("start_time ASC").
		Find(&breaks).Error
	return breaks, err
}

func (r *GormRepository) ListBlockedSlots(
	ctx context.Context,
	tenantID uuid.UUID,
	stylistIDs []uuid.UUID,
	from datatypes.Date,
	to datatypes.Date,
) ([]models.StylistBlockedSlot, error) {

	if len(stylistIDs) == 0 {
		return nil, nil
	}

	var slots []models.StylistBlockedSlot
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND stylist_id IN ?", tenantID, stylistIDs).
		Where("blocked_date BETWEEN ? AND ?", from, to).
		Order("blocked_date ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *GormRepository) ListStylistDayBlocks(
	ctx context.Context,
	tenantID uuid.UUID,
	stylistID uuid.UUID,
	date datatypes.Date,
) ([]models.StylistBlockedSlot, error) {

	var slots []models.StylistBlockedSlot
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND stylist_id = ? AND blocked_date = ?", tenantID, stylistID, date).
		Find(&slots).Error
	return slots, err
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *GormRepository) AppendAuditLog(
	ctx context.Context,
	entry *models.AuditLog,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *GormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}
