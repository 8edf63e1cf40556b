package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// terminalStatuses returns the status names that close a delivery.
func terminalStatuses() []string {
	return []string{
		delivery.StatusDelivered.String(),
		delivery.StatusFailed.String(),
		delivery.StatusCancelled.String(),
	}
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all deliveries that have not reached a terminal status.
func (r *GormDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("status NOT IN ?", terminalStatuses()).
		Order("date, slot, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActiveDue retrieves the non-terminal deliveries in a slot scheduled on
// or before latestDate. This is the scheduler's sweep set: deliveries already
// closed never reappear, which keeps re-runs idempotent.
func (r *GormDeliveryRepository) GetAllActiveDue(
	ctx context.Context, slot kernel.Slot, latestDate time.Time,
) ([]*delivery.Delivery, error) {
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("slot = ? AND date <= ? AND status NOT IN ?", slot.String(), latestDate, terminalStatuses()).
		Order("date, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActiveByOrder retrieves the non-terminal deliveries spawned by an order.
func (r *GormDeliveryRepository) GetAllActiveByOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND status NOT IN ?", orderID.Bytes(), terminalStatuses()).
		Order("date, slot, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountActiveByRouteAndDate counts the non-terminal deliveries on a route for
// a calendar date. The assignment flow compares the count against the route's
// ceiling.
func (r *GormDeliveryRepository) CountActiveByRouteAndDate(
	ctx context.Context, routeID kernel.UUID, date time.Time,
) (int, error) {
	if err := routeID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("route_id = ? AND date = ? AND status NOT IN ?",
			routeID.Bytes(), delivery.NormalizeDate(date), terminalStatuses()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

func toDomainSlice(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
