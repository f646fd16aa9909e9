package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/models"
)

func TestBalances(t *testing.T) {
	balances := Balances([]models.Participant{
		{Name: "Alice", Amount: 90},
		{Name: "Bob", Amount: 30},
		{Name: "Charlie", Amount: -5},
	})

	require.Len(t, balances, 3)

	// Input order is kept; Charlie's negative amount is clamped
	assert.Equal(t, models.Balance{Name: "Alice", Amount: 90, Balance: 50}, balances[0])
	assert.Equal(t, models.Balance{Name: "Bob", Amount: 30, Balance: -10}, balances[1])
	assert.Equal(t, models.Balance{Name: "Charlie", Amount: 0, Balance: -40}, balances[2])
}

func TestBalances_NothingToSettle(t *testing.T) {
	assert.Nil(t, Balances(nil))
	assert.Nil(t, Balances([]models.Participant{{Name: "Alice"}, {Name: "Bob"}}))
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]models.Participant{
		{Name: "Alice", Amount: 90},
		{Name: "Bob", Amount: 30},
		{Name: "Charlie", Amount: 0},
	})

	assert.Equal(t, 120.0, summary.Total)
	assert.Equal(t, 40.0, summary.Share)
	assert.False(t, summary.Settled())
	require.Len(t, summary.Balances, 3)
	assert.Equal(t, "Alice", summary.Balances[0].Name)
	assert.Equal(t, []models.Transaction{
		{From: "Bob", To: "Alice", Amount: 10},
		{From: "Charlie", To: "Alice", Amount: 40},
	}, summary.Transactions)
}

func TestSummarize_Settled(t *testing.T) {
	tests := []struct {
		name         string
		participants []models.Participant
		wantTotal    float64
	}{
		{name: "empty", participants: nil, wantTotal: 0},
		{name: "zero total", participants: []models.Participant{{Name: "A"}, {Name: "B"}}, wantTotal: 0},
		{name: "even split", participants: []models.Participant{{Name: "A", Amount: 10}, {Name: "B", Amount: 10}}, wantTotal: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.participants)
			assert.True(t, summary.Settled())
			assert.Equal(t, tt.wantTotal, summary.Total)
		})
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 50, want: 50},
		{in: 1.005, want: 1.01},
		{in: 2.675, want: 2.68},
		{in: 0.005, want: 0.01},
		{in: 0.004, want: 0},
		{in: 3.333333, want: 3.33},
		{in: -1.005, want: -1.01},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundCents(tt.in), "RoundCents(%v)", tt.in)
	}
}

func TestValidateParticipants(t *testing.T) {
	tests := []struct {
		name         string
		participants []models.Participant
		wantErr      error
	}{
		{
			name:         "empty list is valid",
			participants: nil,
		},
		{
			name:         "unique names",
			participants: []models.Participant{{Name: "Alice", Amount: 1}, {Name: "Bob"}},
		},
		{
			name:         "blank name",
			participants: []models.Participant{{Name: "Alice"}, {Name: "   "}},
			wantErr:      ErrEmptyName,
		},
		{
			name:         "duplicate name",
			participants: []models.Participant{{Name: "Alice"}, {Name: "Bob"}, {Name: "Alice "}},
			wantErr:      ErrDuplicateName,
		},
		{
			name:         "sum overflows",
			participants: []models.Participant{{Name: "A", Amount: 1e308}, {Name: "B", Amount: 1e308}, {Name: "C"}},
			wantErr:      ErrTotalOverflow,
		},
		{
			name:         "largest finite amount alone",
			participants: []models.Participant{{Name: "A", Amount: math.MaxFloat64}, {Name: "B", Amount: math.Inf(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParticipants(tt.participants)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestRoundCents_NonFinite(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.True(t, math.IsInf(RoundCents(math.Inf(1)), 1))
		assert.True(t, math.IsInf(RoundCents(math.Inf(-1)), -1))
		assert.True(t, math.IsNaN(RoundCents(math.NaN())))
	})
}
