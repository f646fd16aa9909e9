package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/settleup/internal/models"
)

var (
	ErrEmptyName     = errors.New("participant name is required")
	ErrDuplicateName = errors.New("participant names must be unique")
	ErrTotalOverflow = errors.New("contributions are too large to add up")
)

// ValidateParticipants checks the input a collaborator collected before it
// is handed to Settle. Settle itself assumes unique names: two entries with
// the same name could end up paying each other. Amounts whose sum
// overflows float64 are rejected so totals stay finite.
func ValidateParticipants(participants []models.Participant) error {
	seen := make(map[string]int, len(participants))
	total := 0.0
	for i, p := range participants {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("participant %d: %w", i+1, ErrEmptyName)
		}
		if first, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateName, name, first+1, i+1)
		}
		seen[name] = i
		total += sanitizeAmount(p.Amount)
	}
	if math.IsInf(total, 0) {
		return fmt.Errorf("%w: sum exceeds %g", ErrTotalOverflow, math.MaxFloat64)
	}
	return nil
}
