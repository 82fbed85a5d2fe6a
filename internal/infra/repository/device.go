package repository

import "github.com/BruksfildServices01/barber-booking/internal/storage"

// DeviceRepositories groups the stores of one device. All of them share the
// device's key namespace.
type DeviceRepositories struct {
	Users        *UserKVRepository
	Appointments *AppointmentKVRepository
	Rewards      *RewardsKVRepository
	Booking      *BookingKVRepository
}

func ForDevice(root storage.Storage, deviceID string) *DeviceRepositories {
	st := storage.Namespace(root, deviceID)

	return &DeviceRepositories{
		Users:        NewUserKVRepository(st),
		Appointments: NewAppointmentKVRepository(st),
		Rewards:      NewRewardsKVRepository(st),
		Booking:      NewBookingKVRepository(st),
	}
}
