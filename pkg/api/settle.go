package api

// Participant is one person's contribution.
type Participant struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Balance is a participant's position against the fair share.
type Balance struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Balance float64 `json:"balance"` // Positive = owed money, Negative = owes money
}

// Transaction is a payment from a debtor to a creditor.
type Transaction struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type SettleRequest struct {
	Participants []*Participant `json:"participants"`
}

func (x *SettleRequest) GetParticipants() []*Participant {
	if x != nil {
		return x.Participants
	}
	return nil
}

type SettleResponse struct {
	SettlementId string         `json:"settlement_id"`
	Total        float64        `json:"total"`
	Share        float64        `json:"share"`
	Settled      bool           `json:"settled"`
	Balances     []*Balance     `json:"balances"`
	Transactions []*Transaction `json:"transactions"`
}
