package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antiquehaven/antique-haven-api/internal/application/sales"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
)

func TestParsePeriod_FechasSimples(t *testing.T) {
	start, end, err := sales.ParsePeriod("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	// la fecha final sin hora abarca el día completo
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, 23, end.Hour())
}

func TestParsePeriod_RFC3339ConservaLaHora(t *testing.T) {
	start, end, err := sales.ParsePeriod("2025-03-10T08:30:00Z", "2025-03-10T17:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, 8, start.Hour())
	assert.Equal(t, 17, end.Hour(), "con hora explícita no se extiende al fin del día")
}

func TestParsePeriod_EntradasInvalidas(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"inicio vacío", "", "2025-01-31"},
		{"fin vacío", "2025-01-01", ""},
		{"formato desconocido", "01/01/2025", "2025-01-31"},
		{"rango invertido", "2025-02-01", "2025-01-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := sales.ParsePeriod(tc.start, tc.end)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
