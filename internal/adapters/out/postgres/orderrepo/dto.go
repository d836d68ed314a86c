// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tariff"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and driver assignment. Monetary amounts are
// stored as integer cents.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	CustomerContact string     `gorm:""`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`

	Shipment  ShipmentDTO  `gorm:"embedded"`
	Breakdown BreakdownDTO `gorm:"embedded"`

	Status int `gorm:"index"`

	Proof ProofDTO `gorm:"embedded;embeddedPrefix:proof_"`

	CreatedAt   time.Time `gorm:"index"`
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ShipmentDTO represents the embedded shipment value object within the order table.
// Coordinates are nullable since geocoding is optional.
type ShipmentDTO struct {
	PickupAddress       string
	DropoffAddress      string
	PickupLat           *float64
	PickupLng           *float64
	DropoffLat          *float64
	DropoffLng          *float64
	DistanceMiles       float64
	WeightLb            float64
	Urgent              bool
	Description         string
	SpecialInstructions string
}

// BreakdownDTO represents the embedded price breakdown within the order table.
// The snapshot is immutable once written; tariff edits never touch these columns.
type BreakdownDTO struct {
	BaseRateCents        int64
	MileageChargeCents   int64
	WeightSurchargeCents int64
	UrgentSurchargeCents int64
	TotalPriceCents      int64
}

// ProofDTO represents the embedded proof-of-delivery evidence within the order
// table. Attached distinguishes "no proof yet" from a proof with empty fields.
type ProofDTO struct {
	Attached      bool
	PhotoURL      string
	SignatureURL  string
	RecipientName string
	Notes         string
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional driver assignment, proof of
// delivery, and lifecycle timestamps.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	shipment := aggregate.Shipment()
	shipmentDTO := ShipmentDTO{
		PickupAddress:       shipment.PickupAddress(),
		DropoffAddress:      shipment.DropoffAddress(),
		DistanceMiles:       shipment.DistanceMiles(),
		WeightLb:            shipment.WeightLb(),
		Urgent:              shipment.IsUrgent(),
		Description:         shipment.Description(),
		SpecialInstructions: shipment.SpecialInstructions(),
	}
	if loc := shipment.PickupLocation(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		shipmentDTO.PickupLat = &lat
		shipmentDTO.PickupLng = &lng
	}
	if loc := shipment.DropoffLocation(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		shipmentDTO.DropoffLat = &lat
		shipmentDTO.DropoffLng = &lng
	}

	breakdown := aggregate.Breakdown()

	proofDTO := ProofDTO{}
	if proof := aggregate.Proof(); proof != nil {
		proofDTO = ProofDTO{
			Attached:      true,
			PhotoURL:      proof.PhotoURL(),
			SignatureURL:  proof.SignatureURL(),
			RecipientName: proof.RecipientName(),
			Notes:         proof.Notes(),
		}
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		CustomerContact: aggregate.CustomerContact(),
		DriverID:        driverID,
		Shipment:        shipmentDTO,
		Breakdown: BreakdownDTO{
			BaseRateCents:        breakdown.BaseRate().Cents(),
			MileageChargeCents:   breakdown.MileageCharge().Cents(),
			WeightSurchargeCents: breakdown.WeightSurcharge().Cents(),
			UrgentSurchargeCents: breakdown.UrgentSurcharge().Cents(),
			TotalPriceCents:      breakdown.TotalPrice().Cents(),
		},
		Status:      int(aggregate.Status()),
		Proof:       proofDTO,
		CreatedAt:   aggregate.CreatedAt(),
		AssignedAt:  aggregate.AssignedAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		InTransitAt: aggregate.InTransitAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, driver binding,
// price breakdown, and proof of delivery using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	shipment, err := shipmentToDomain(dto.Shipment)
	if err != nil {
		return nil, err
	}

	breakdown, err := breakdownToDomain(dto.Breakdown)
	if err != nil {
		return nil, err
	}

	var proof *order.ProofOfDelivery
	if dto.Proof.Attached {
		p, proofErr := order.NewProofOfDelivery(
			dto.Proof.PhotoURL,
			dto.Proof.SignatureURL,
			dto.Proof.RecipientName,
			dto.Proof.Notes,
		)
		if proofErr != nil {
			return nil, proofErr
		}

		proof = &p
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		OrderNumber:     dto.OrderNumber,
		CustomerID:      customerID,
		CustomerContact: dto.CustomerContact,
		DriverID:        driverID,
		Shipment:        shipment,
		Breakdown:       breakdown,
		Status:          order.Status(dto.Status),
		Proof:           proof,
		CreatedAt:       dto.CreatedAt,
		AssignedAt:      dto.AssignedAt,
		PickedUpAt:      dto.PickedUpAt,
		InTransitAt:     dto.InTransitAt,
		DeliveredAt:     dto.DeliveredAt,
		CompletedAt:     dto.CompletedAt,
	})
}

func shipmentToDomain(dto ShipmentDTO) (order.Shipment, error) {
	var pickupLocation *kernel.Location
	if dto.PickupLat != nil && dto.PickupLng != nil {
		loc, err := kernel.NewLocation(*dto.PickupLat, *dto.PickupLng)
		if err != nil {
			return order.Shipment{}, err
		}
		pickupLocation = &loc
	}

	var dropoffLocation *kernel.Location
	if dto.DropoffLat != nil && dto.DropoffLng != nil {
		loc, err := kernel.NewLocation(*dto.DropoffLat, *dto.DropoffLng)
		if err != nil {
			return order.Shipment{}, err
		}
		dropoffLocation = &loc
	}

	return order.NewShipment(
		dto.PickupAddress,
		dto.DropoffAddress,
		pickupLocation,
		dropoffLocation,
		dto.DistanceMiles,
		dto.WeightLb,
		dto.Urgent,
		dto.Description,
		dto.SpecialInstructions,
	)
}

func breakdownToDomain(dto BreakdownDTO) (tariff.PriceBreakdown, error) {
	baseRate, err := kernel.NewMoneyFromCents(dto.BaseRateCents)
	if err != nil {
		return tariff.PriceBreakdown{}, err
	}

	mileageCharge, err := kernel.NewMoneyFromCents(dto.MileageChargeCents)
	if err != nil {
		return tariff.PriceBreakdown{}, err
	}

	weightSurcharge, err := kernel.NewMoneyFromCents(dto.WeightSurchargeCents)
	if err != nil {
		return tariff.PriceBreakdown{}, err
	}

	urgentSurcharge, err := kernel.NewMoneyFromCents(dto.UrgentSurchargeCents)
	if err != nil {
		return tariff.PriceBreakdown{}, err
	}

	totalPrice, err := kernel.NewMoneyFromCents(dto.TotalPriceCents)
	if err != nil {
		return tariff.PriceBreakdown{}, err
	}

	return tariff.RestorePriceBreakdown(baseRate, mileageCharge, weightSurcharge, urgentSurcharge, totalPrice)
}
