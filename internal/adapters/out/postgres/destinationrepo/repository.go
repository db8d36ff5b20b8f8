package destinationrepo

import (
	"context"
	"errors"

	"fueldispatch/internal/core/domain/model/destination"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDestinationRepository implements DestinationRepository using GORM.
type GormDestinationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDestinationRepository creates a new GORM destination repository.
func NewGormDestinationRepository(db *gorm.DB, tracker aggregateTracker) *GormDestinationRepository {
	return &GormDestinationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new destination to the database.
func (r *GormDestinationRepository) Add(ctx context.Context, aggregate *destination.Destination) error {
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

// Get retrieves a destination by ID.
func (r *GormDestinationRepository) Get(ctx context.Context, id kernel.UUID) (*destination.Destination, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DestinationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("destination", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the destinations for the given identifiers. Every
// requested ID must resolve; a missing destination is reported as an
// ObjectNotFound error naming the first absent ID.
func (r *GormDestinationRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*destination.Destination, error) {
	if len(ids) == 0 {
		return []*destination.Destination{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []DestinationDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]DestinationDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	destinations := make([]*destination.Destination, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		key := id.Bytes()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		dto, ok := found[key]
		if !ok {
			return nil, errs.NewObjectNotFoundError("destination", id.String())
		}

		dest, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, dest)
	}

	return destinations, nil
}
