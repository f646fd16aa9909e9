package models

// Participant represents one person sharing the expenses.
type Participant struct {
	// Name identifies the participant in the resulting transactions.
	Name string

	// Amount is the money this person contributed. Expected to be >= 0.
	Amount float64
}

// Balance is a participant's position relative to the average share.
// It is derived state owned by the calculator.
type Balance struct {
	Name   string
	Amount float64 // Sanitized contribution
	// Balance is Amount minus the average share.
	// Positive = owed money (creditor), Negative = owes money (debtor).
	Balance float64
}

// IsCreditor reports whether the participant should receive money.
func (b Balance) IsCreditor() bool { return b.Balance > 0 }

// IsDebtor reports whether the participant should pay money.
func (b Balance) IsDebtor() bool { return b.Balance < 0 }
