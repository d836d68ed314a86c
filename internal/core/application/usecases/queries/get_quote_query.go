// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetQuoteQueryIsNotConstructed = errors.New(
	"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
)

// GetQuoteQuery prices a prospective shipment against the active tariff
// without creating anything. The same formula runs again at checkout, so the
// quoted price is the price the order will carry.
//
// Example:
//
//	query, err := NewGetQuoteQuery(12.5, 40, true)
//	if err != nil {
//	    return err
//	}
//
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get quote: %w", err)
//	}
//	fmt.Printf("Total: %d cents\n", quote.TotalPriceCents)
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	distanceMiles float64
	weightLb      float64
	urgent        bool

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery creates a quote query for the given shipment parameters.
// Distance and weight must be strictly positive.
func NewGetQuoteQuery(distanceMiles, weightLb float64, urgent bool) (GetQuoteQuery, error) {
	q := GetQuoteQuery{
		urgent: urgent,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setDistanceMiles(distanceMiles),
		q.setWeightLb(weightLb),
	); err != nil {
		return GetQuoteQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

// DistanceMiles returns the prospective road distance.
func (q GetQuoteQuery) DistanceMiles() float64 {
	return q.distanceMiles
}

// WeightLb returns the prospective package weight.
func (q GetQuoteQuery) WeightLb() float64 {
	return q.weightLb
}

// IsUrgent reports whether urgent delivery is requested.
func (q GetQuoteQuery) IsUrgent() bool {
	return q.urgent
}

func (q *GetQuoteQuery) setDistanceMiles(distance float64) error {
	if distance <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%f is not greater than 0", distance))
	}

	q.distanceMiles = distance
	return nil
}

func (q *GetQuoteQuery) setWeightLb(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%f is not greater than 0", weight))
	}

	q.weightLb = weight
	return nil
}

// GetQuoteQueryResponse is the itemized quote read model, all amounts in
// integer cents.
type GetQuoteQueryResponse struct {
	BaseRateCents        int64
	MileageChargeCents   int64
	WeightSurchargeCents int64
	UrgentSurchargeCents int64
	TotalPriceCents      int64
}
