package commands

import (
	"context"

	"fueldispatch/internal/core/domain/model/delivery"
)

// UpdateDeliveryStatusCommandHandler handles single forward transitions of
// a delivery's lifecycle. The aggregate enforces the transition table; the
// handler only routes the target to the matching aggregate operation.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status transitions. Requires a DeliveryUoWFactory for transactional
// persistence.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Loads the delivery, applies the transition through the aggregate, and
// persists the result. Invalid transitions surface as InvalidTransition
// errors without any write.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case delivery.Dispatched:
		err = d.Dispatch(cmd.OccurredAt())
	case delivery.Loading:
		err = d.StartLoading()
	case delivery.InTransit:
		err = d.StartTransit()
	case delivery.Unloading:
		err = d.StartUnloading()
	case delivery.Completed:
		err = d.Complete(cmd.OccurredAt(), cmd.DistanceKm(), cmd.FuelConsumedLiters())
	default:
		err = ErrTargetStatusIsInvalid
	}
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
