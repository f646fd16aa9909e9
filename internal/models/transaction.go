package models

// Transaction is a directed payment that settles part of a debt.
type Transaction struct {
	// From is the debtor's name.
	From string

	// To is the creditor's name.
	To string

	// Amount is strictly positive and rounded to cents.
	Amount float64
}
