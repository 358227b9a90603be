package ports

import "freight-tariff-service/internal/domain"

// Contract for pricing shipments against a tariff.
type PriceCalculator interface {
	// Price a single shipment. Returns domain.ErrDistanceOutOfRange when the
	// distance is beyond the tariff's last zone.
	Calculate(in domain.ShipmentInput) (domain.PriceBreakdown, error)
	// Reference data the calculator prices against.
	Tariff() *domain.Tariff
}
