package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capquote/internal/domain/entities"
	"capquote/internal/orderstate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("QUOTE_TUNABLES_FILE", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExtractCommand(t *testing.T) {
	out, err := run(t, "closure: fitted\nSize: Large", "extract", "-")
	require.NoError(t, err)

	var got extractOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Fitted", got.Normalized.Style.Closure)
	assert.NotEmpty(t, got.Raw.Matches)
}

func TestStatusCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "response.txt")
	require.NoError(t, os.WriteFile(path, []byte("Closure: Fitted"), 0o644))

	out, err := run(t, "", "status", path)
	require.NoError(t, err)

	var got entities.SectionStatus
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, entities.StatusRed, got.Style)
	assert.Equal(t, entities.StatusEmpty, got.Customization)
	assert.False(t, got.CostBreakdown.Available)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	tiers := filepath.Join(dir, "tiers.yaml")
	require.NoError(t, os.WriteFile(tiers, []byte(`
recommendations:
  - location: Front
    method: 3DEmbroidery
    price_tiers:
      - {quantity: 48, unit_price: 1.00}
      - {quantity: 144, unit_price: 0.50}
`), 0o644))

	t.Run("within tolerance", func(t *testing.T) {
		out, err := run(t, "", "validate", "--quantity", "144", "--quote-cost", "74", "--tiers", tiers)
		require.NoError(t, err)
		var got entities.ConsistencyCheckResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 144, got.Breakpoint)
		assert.InDelta(t, 72.0, got.LogoAnalysisCost, 1e-9)
		assert.False(t, got.DiscrepancyFound)
		assert.Equal(t, entities.ResolutionWithinTolerance, got.ResolutionMethod)
	})

	t.Run("discrepancy takes the higher cost", func(t *testing.T) {
		out, err := run(t, "", "validate", "--quantity", "144", "--quote-cost", "50", "--tiers", tiers)
		require.NoError(t, err)
		var got entities.ConsistencyCheckResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.DiscrepancyFound)
		assert.InDelta(t, 72.0, got.ResolvedCost, 1e-9)
		assert.Equal(t, entities.ResolutionConservativeMax, got.ResolutionMethod)
	})

	t.Run("missing quantity", func(t *testing.T) {
		_, err := run(t, "", "validate", "--tiers", tiers)
		require.Error(t, err)
	})

	t.Run("non-positive quote cost", func(t *testing.T) {
		_, err := run(t, "", "validate", "--quantity", "144", "--quote-cost=-5", "--tiers", tiers)
		require.ErrorIs(t, err, orderstate.ErrInvalidQuoteCost)
	})

	t.Run("missing tiers file", func(t *testing.T) {
		_, err := run(t, "", "validate", "--quantity", "10", "--quote-cost", "10", "--tiers", filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})
}
