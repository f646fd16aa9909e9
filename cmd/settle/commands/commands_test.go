package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/server"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestParseParticipant(t *testing.T) {
	tests := []struct {
		arg     string
		want    models.Participant
		wantErr bool
	}{
		{arg: "Alice=90", want: models.Participant{Name: "Alice", Amount: 90}},
		{arg: " Bob = 12.5 ", want: models.Participant{Name: "Bob", Amount: 12.5}},
		{arg: "Charlie=", want: models.Participant{Name: "Charlie"}},
		{arg: "a=b=3", want: models.Participant{Name: "a=b", Amount: 3}},
		{arg: "Dave", wantErr: true},
		{arg: "Eve=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseParticipant(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Text(t *testing.T) {
	out, err := execute(t, "", "run", "Alice=90", "Bob=30", "Charlie=0")
	require.NoError(t, err)

	assert.Contains(t, out, "Total: $120.00")
	assert.Contains(t, out, "Each person pays: $40.00")
	assert.Contains(t, out, "Bob pays Alice $10.00")
	assert.Contains(t, out, "Charlie pays Alice $40.00")
}

func TestRun_AlreadySettled(t *testing.T) {
	out, err := execute(t, "", "run", "Alice=10", "Bob=10")
	require.NoError(t, err)
	assert.Contains(t, out, "Everyone is already settled.")
}

func TestRun_JSONFromInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"participants":[{"name":"Alice","amount":100},{"name":"Bob","amount":0}]}`), 0o600))

	out, err := execute(t, "", "run", "--input", path, "--output", "json")
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 100.0, got.Total)
	assert.Equal(t, 50.0, got.Share)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "Bob", got.Transactions[0].From)
	assert.Equal(t, "Alice", got.Transactions[0].To)
	assert.Equal(t, 50.0, got.Transactions[0].Amount)
}

func TestRun_InputFromStdinMergesArgs(t *testing.T) {
	out, err := execute(t, `{"participants":[{"name":"Alice","amount":60}]}`,
		"run", "--input", "-", "Bob=0")
	require.NoError(t, err)
	assert.Contains(t, out, "Bob pays Alice $30.00")
}

func TestRun_Errors(t *testing.T) {
	tests := map[string][]string{
		"no participants": {"run"},
		"bad argument":    {"run", "Alice"},
		"duplicate name":  {"run", "Alice=1", "Alice=2"},
		"total overflows": {"run", "A=1e308", "B=1e308", "C=0"},
		"blank name":      {"run", "=5", "Bob=1"},
		"bad output":      {"run", "--output", "yaml", "Alice=1"},
		"missing file":    {"run", "--input", "/nonexistent/trip.json"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "", args...)
			assert.Error(t, err)
		})
	}
}

func TestRun_Remote(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(server.NewRouter(logger, server.RouterDependencies{MaxParticipants: 10}))
	t.Cleanup(srv.Close)

	out, err := execute(t, "", "run", "--remote", srv.URL+"/", "Alice=90", "Bob=30", "Charlie=0")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: $120.00")
	assert.Contains(t, out, "Charlie pays Alice $40.00")

	_, err = execute(t, "", "run", "--remote", srv.URL, "Alice=1", "Alice=2")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	out, err := execute(t, "correct horse\n", "hash-password", "--cost", "4")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse")))

	_, err = execute(t, "", "hash-password", "--password", "short")
	assert.Error(t, err)
}
