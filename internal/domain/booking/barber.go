package booking

import (
	"encoding/json"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AnyAvailableID is the barber id stored on appointments booked with
// AnyAvailable.
const AnyAvailableID = "any"

// AnyAvailableBarber is how the shop's "first available" option is shown.
var AnyAvailableBarber = models.Barber{
	ID:        AnyAvailableID,
	Name:      "First Available",
	Specialty: "Any barber",
}

// BarberChoice is either a specific barber of the shop or any available one.
// The zero value means nothing was chosen.
type BarberChoice struct {
	any      bool
	barberID string
}

func AnyAvailable() BarberChoice {
	return BarberChoice{any: true}
}

func Specific(barberID string) BarberChoice {
	return BarberChoice{barberID: barberID}
}

func (c BarberChoice) IsZero() bool {
	return !c.any && c.barberID == ""
}

func (c BarberChoice) IsAny() bool {
	return c.any
}

func (c BarberChoice) BarberID() string {
	if c.any {
		return AnyAvailableID
	}
	return c.barberID
}

// Resolve returns the barber the choice points at in shop.
func (c BarberChoice) Resolve(shop *models.Barbershop) (models.Barber, error) {
	if c.any {
		return AnyAvailableBarber, nil
	}
	if c.barberID == "" {
		return models.Barber{}, ErrNoBarber
	}

	b, ok := shop.FindBarber(c.barberID)
	if !ok {
		return models.Barber{}, ErrBarberNotFound
	}
	return b, nil
}

type barberChoiceJSON struct {
	Any      bool   `json:"any,omitempty"`
	BarberID string `json:"barber_id,omitempty"`
}

func (c BarberChoice) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(barberChoiceJSON{Any: c.any, BarberID: c.barberID})
}

func (c *BarberChoice) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = BarberChoice{}
		return nil
	}

	var raw barberChoiceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Any && raw.BarberID != "" {
		return errors.New("booking: barber choice cannot be both any and specific")
	}

	if raw.Any {
		*c = AnyAvailable()
	} else {
		*c = Specific(raw.BarberID)
	}
	return nil
}
