package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
	pb "github.com/mmynk/settleup/pkg/api"
	"github.com/mmynk/settleup/pkg/api/apiconnect"
)

// report is what run prints, whether computed locally or remotely.
type report struct {
	Total        float64           `json:"total"`
	Share        float64           `json:"share"`
	Transactions []*pb.Transaction `json:"transactions"`
}

func runCmd() *cobra.Command {
	var (
		input   string
		remote  string
		token   string
		output  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run [NAME=AMOUNT...]",
		Short: "Compute the payments that settle a shared expense",
		Example: `  settle run Alice=90 Bob=30 Charlie=0
  settle run --input trip.json --output json
  settle run --remote http://localhost:8080 --token $TOKEN Alice=10 Bob=0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unknown output format %q (want text or json)", output)
			}

			var participants []models.Participant
			if input != "" {
				fromFile, err := readParticipants(cmd.InOrStdin(), input)
				if err != nil {
					return err
				}
				participants = fromFile
			}
			for _, arg := range args {
				p, err := parseParticipant(arg)
				if err != nil {
					return err
				}
				participants = append(participants, p)
			}
			if len(participants) == 0 {
				return fmt.Errorf("no participants given; pass NAME=AMOUNT arguments or --input")
			}

			var (
				r   report
				err error
			)
			if remote != "" {
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()
				r, err = settleRemote(ctx, remote, token, participants)
			} else {
				r, err = settleLocal(participants)
			}
			if err != nil {
				return err
			}

			if output == "json" {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			writeText(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", `JSON file with {"participants":[{"name","amount"}]} ("-" for stdin)`)
	cmd.Flags().StringVar(&remote, "remote", "", "settleup server base URL (e.g. http://127.0.0.1:8080)")
	cmd.Flags().StringVar(&token, "token", "", "bearer token for --remote")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout for --remote")
	return cmd
}

// parseParticipant parses NAME=AMOUNT. The last "=" separates the amount
// so names may contain "=".
func parseParticipant(arg string) (models.Participant, error) {
	i := strings.LastIndex(arg, "=")
	if i < 0 {
		return models.Participant{}, fmt.Errorf("invalid participant %q: want NAME=AMOUNT", arg)
	}

	name := strings.TrimSpace(arg[:i])
	raw := strings.TrimSpace(arg[i+1:])
	if raw == "" {
		return models.Participant{Name: name}, nil
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Participant{}, fmt.Errorf("invalid amount for %q: %w", name, err)
	}
	return models.Participant{Name: name, Amount: amount}, nil
}

func readParticipants(stdin io.Reader, path string) ([]models.Participant, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var req pb.SettleRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	participants := make([]models.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		if p == nil {
			continue
		}
		participants = append(participants, models.Participant{Name: p.Name, Amount: p.Amount})
	}
	return participants, nil
}

func settleLocal(participants []models.Participant) (report, error) {
	if err := calculator.ValidateParticipants(participants); err != nil {
		return report{}, err
	}

	summary := calculator.Summarize(participants)
	slog.Debug("Computed settlement locally",
		"participants_count", len(participants),
		"transactions_count", len(summary.Transactions),
	)

	txs := make([]*pb.Transaction, len(summary.Transactions))
	for i, tx := range summary.Transactions {
		txs[i] = &pb.Transaction{From: tx.From, To: tx.To, Amount: calculator.RoundCents(tx.Amount)}
	}
	return report{
		Total:        calculator.RoundCents(summary.Total),
		Share:        calculator.RoundCents(summary.Share),
		Transactions: txs,
	}, nil
}

func settleRemote(ctx context.Context, baseURL, token string, participants []models.Participant) (report, error) {
	client := apiconnect.NewSettleServiceClient(http.DefaultClient, strings.TrimRight(baseURL, "/"))

	msg := &pb.SettleRequest{Participants: make([]*pb.Participant, len(participants))}
	for i, p := range participants {
		msg.Participants[i] = &pb.Participant{Name: p.Name, Amount: p.Amount}
	}
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Settle(ctx, req)
	if err != nil {
		return report{}, err
	}
	slog.Debug("Remote settlement", "settlement_id", resp.Msg.SettlementId)

	txs := resp.Msg.Transactions
	if txs == nil {
		txs = []*pb.Transaction{}
	}
	return report{Total: resp.Msg.Total, Share: resp.Msg.Share, Transactions: txs}, nil
}

func writeText(w io.Writer, r report) {
	fmt.Fprintf(w, "Total: $%.2f\n", r.Total)
	fmt.Fprintf(w, "Each person pays: $%.2f\n", r.Share)
	fmt.Fprintln(w)

	if len(r.Transactions) == 0 {
		fmt.Fprintln(w, "Everyone is already settled.")
		return
	}
	for _, tx := range r.Transactions {
		fmt.Fprintf(w, "%s pays %s $%.2f\n", tx.From, tx.To, tx.Amount)
	}
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
