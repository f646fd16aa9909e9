package calculator

import (
	"cmp"
	"math"
	"slices"

	"github.com/mmynk/settleup/internal/models"
)

// Tolerance is the residue below which a balance counts as settled.
const Tolerance = 0.01

// Settle returns the payments that bring every participant to the average
// share. It returns nil when there is nothing to settle.
//
// Settle is a pure function: it never mutates participants and is safe to
// call concurrently. Identical input yields identical output.
//
// The matching is a linear greedy pass, not a minimum-transaction solver:
// for groups larger than three it can emit more payments than strictly
// necessary.
func Settle(participants []models.Participant) []models.Transaction {
	balances := Balances(participants)
	if balances == nil {
		return nil
	}
	return match(balances)
}

// match pairs debtors with creditors. balances is not modified.
//
// Algorithm:
// - Stable sort by balance, descending (ties keep input order)
// - Creditors: balance > 0, debtors: balance < 0, zero balances drop out
// - Walk both lists with independent cursors, paying min(debt, credit)
// - A cursor advances once its side is within Tolerance of zero
func match(balances []models.Balance) []models.Transaction {
	sorted := slices.Clone(balances)
	slices.SortStableFunc(sorted, func(a, b models.Balance) int {
		return cmp.Compare(b.Balance, a.Balance)
	})

	var creditors, debtors []models.Balance
	for _, b := range sorted {
		if b.IsCreditor() {
			creditors = append(creditors, b)
		} else if b.IsDebtor() {
			debtors = append(debtors, b)
		}
	}

	var transactions []models.Transaction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := math.Min(-debtor.Balance, creditor.Balance)

		// Sub-cent residue from float division is not worth a payment
		if rounded := RoundCents(amount); rounded > 0 {
			transactions = append(transactions, models.Transaction{
				From:   debtor.Name,
				To:     creditor.Name,
				Amount: rounded,
			})
		}

		debtor.Balance += amount
		creditor.Balance -= amount

		if math.Abs(debtor.Balance) < Tolerance {
			i++
		}
		if creditor.Balance < Tolerance {
			j++
		}
	}

	return transactions
}
