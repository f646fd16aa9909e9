package calculator

import (
	"math"

	"github.com/mmynk/settleup/internal/models"
)

// Summary holds everything derived from one settlement request.
type Summary struct {
	Total        float64 // Sum of sanitized contributions
	Share        float64 // Fair share per participant (Total / n)
	Balances     []models.Balance
	Transactions []models.Transaction
}

// Settled reports whether nobody needs to pay anyone.
func (s Summary) Settled() bool {
	return len(s.Transactions) == 0
}

// Balances computes each participant's position against the average share.
// The result is in input order and owned by the caller; participants is
// only read. Returns nil when there is nothing to settle: no participants,
// or contributions that sum to exactly zero.
//
// Algorithm:
// - Sanitize each amount (negative, NaN and Inf count as 0)
// - total = sum of amounts, average = total / n
// - balance = amount - average
func Balances(participants []models.Participant) []models.Balance {
	balances, _, _ := computeBalances(participants)
	return balances
}

// Summarize computes the group total, the per-person share, balances and
// the transactions that settle them.
//
// Total is +Inf when the contributions overflow float64. Share and the
// balances stay finite; ValidateParticipants rejects such input upstream.
func Summarize(participants []models.Participant) Summary {
	balances, total, average := computeBalances(participants)
	if balances == nil {
		return Summary{}
	}

	return Summary{
		Total:        total,
		Share:        average,
		Balances:     balances,
		Transactions: match(balances),
	}
}

func computeBalances(participants []models.Participant) ([]models.Balance, float64, float64) {
	if len(participants) == 0 {
		return nil, 0, 0
	}

	balances := make([]models.Balance, len(participants))
	total := 0.0
	for i, p := range participants {
		amount := sanitizeAmount(p.Amount)
		balances[i] = models.Balance{Name: p.Name, Amount: amount}
		total += amount
	}
	if total == 0 {
		return nil, 0, 0
	}

	average := mean(balances, total)
	for i := range balances {
		balances[i].Balance = balances[i].Amount - average
	}

	return balances, total, average
}

// mean returns total / n, dividing each amount first when total overflowed.
func mean(balances []models.Balance, total float64) float64 {
	n := float64(len(balances))
	if !math.IsInf(total, 0) {
		return total / n
	}

	average := 0.0
	for _, b := range balances {
		average += b.Amount / n
	}
	return average
}

// sanitizeAmount clamps contributions the engine cannot reason about to 0.
func sanitizeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}
