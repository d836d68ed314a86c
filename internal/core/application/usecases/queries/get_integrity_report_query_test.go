package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetIntegrityReportQuery_Valid(t *testing.T) {
	query := queries.NewGetIntegrityReportQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetIntegrityReportQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetIntegrityReportQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetIntegrityReportQueryIsNotConstructed)
}

func TestGetIntegrityReportQueryResponse_Clean(t *testing.T) {
	report := queries.GetIntegrityReportQueryResponse{}
	assert.True(t, report.Clean())

	report.FailedSyncs = []queries.FailedSync{{OrderNumber: "ORD-5A2F91C0", FailureCount: 3}}
	assert.False(t, report.Clean())
}
