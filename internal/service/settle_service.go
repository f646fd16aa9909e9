package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/models"
	pb "github.com/mmynk/settleup/pkg/api"
	"github.com/mmynk/settleup/pkg/api/apiconnect"
)

// SettleService implements the Connect SettleService
type SettleService struct {
	apiconnect.UnimplementedSettleServiceHandler
	maxParticipants int
	metrics         *metrics.Metrics
}

// NewSettleService creates a SettleService that accepts at most
// maxParticipants per request. m may be nil.
func NewSettleService(maxParticipants int, m *metrics.Metrics) *SettleService {
	return &SettleService{maxParticipants: maxParticipants, metrics: m}
}

// Settle computes who pays whom so every participant ends at the fair share.
func (s *SettleService) Settle(ctx context.Context, req *connect.Request[pb.SettleRequest]) (*connect.Response[pb.SettleResponse], error) {
	participants := toModelParticipants(req.Msg.GetParticipants())
	slog.Info("Settle request received", "participants_count", len(participants))

	if s.maxParticipants > 0 && len(participants) > s.maxParticipants {
		s.rejected()
		return nil, connect.NewError(connect.CodeResourceExhausted,
			fmt.Errorf("at most %d participants per settlement, got %d", s.maxParticipants, len(participants)))
	}

	if err := calculator.ValidateParticipants(participants); err != nil {
		s.rejected()
		slog.Warn("Settle validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	summary := calculator.Summarize(participants)
	settlementID := uuid.New().String()

	for _, tx := range summary.Transactions {
		slog.Debug("Transaction",
			"settlement_id", settlementID,
			"from", tx.From,
			"to", tx.To,
			"amount", tx.Amount,
		)
	}

	if s.metrics != nil {
		s.metrics.ObserveSettlement(len(participants), len(summary.Transactions))
	}

	slog.Info("Settle successful",
		"settlement_id", settlementID,
		"total", summary.Total,
		"share", summary.Share,
		"transactions_count", len(summary.Transactions),
	)

	return connect.NewResponse(toSettleResponse(settlementID, participants, summary)), nil
}

func (s *SettleService) rejected() {
	if s.metrics != nil {
		s.metrics.ObserveRejected()
	}
}

// toModelParticipants converts wire participants; nil entries are skipped.
func toModelParticipants(in []*pb.Participant) []models.Participant {
	out := make([]models.Participant, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, models.Participant{Name: p.Name, Amount: p.Amount})
	}
	return out
}

// toSettleResponse builds the wire response. Money values are rounded to
// cents; balances are listed for every participant, in request order.
func toSettleResponse(id string, participants []models.Participant, summary calculator.Summary) *pb.SettleResponse {
	resp := &pb.SettleResponse{
		SettlementId: id,
		Total:        calculator.RoundCents(summary.Total),
		Share:        calculator.RoundCents(summary.Share),
		Settled:      summary.Settled(),
		Balances:     make([]*pb.Balance, 0, len(participants)),
		Transactions: make([]*pb.Transaction, 0, len(summary.Transactions)),
	}

	if summary.Balances == nil {
		// Nothing contributed: everyone sits at a zero balance
		for _, p := range participants {
			resp.Balances = append(resp.Balances, &pb.Balance{Name: p.Name})
		}
	}
	for _, b := range summary.Balances {
		resp.Balances = append(resp.Balances, &pb.Balance{
			Name:    b.Name,
			Amount:  calculator.RoundCents(b.Amount),
			Balance: calculator.RoundCents(b.Balance),
		})
	}

	for _, tx := range summary.Transactions {
		resp.Transactions = append(resp.Transactions, &pb.Transaction{
			From:   tx.From,
			To:     tx.To,
			Amount: tx.Amount,
		})
	}

	return resp
}
