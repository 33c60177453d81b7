package mock

import (
	"context"

	"carscrape"
)

var _ carscrape.VehicleStore = (*VehicleStore)(nil)

// VehicleStore is a mock implementation of carscrape.VehicleStore.
type VehicleStore struct {
	SaveVehicleFn func(ctx context.Context, v *carscrape.Vehicle) error
}

func (s *VehicleStore) SaveVehicle(ctx context.Context, v *carscrape.Vehicle) error {
	return s.SaveVehicleFn(ctx, v)
}

var _ carscrape.DealerStore = (*DealerStore)(nil)

// DealerStore is a mock implementation of carscrape.DealerStore.
type DealerStore struct {
	SaveDealerFn func(ctx context.Context, d *carscrape.Dealer) error
}

func (s *DealerStore) SaveDealer(ctx context.Context, d *carscrape.Dealer) error {
	return s.SaveDealerFn(ctx, d)
}
