package report

import (
	"bytes"
	"errors"
	"freight-tariff-service/internal/domain"
	"freight-tariff-service/internal/services"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyAndPercent(t *testing.T) {
	assert.Equal(t, "$34.50", Money(34.5))
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$627.04", Money(627.04))
	assert.Equal(t, "15.00%", Percent(0.15))
	assert.Equal(t, "0.00%", Percent(0))
	assert.Equal(t, "150.00%", Percent(1.5))
}

func TestWriteBreakdown(t *testing.T) {
	engine := services.NewTariffEngine(domain.NovaXpressTariff())
	b, err := engine.Calculate(services.ExampleScenarios()[0].Input)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteBreakdown(&buf, b))
	out := buf.String()

	assert.Contains(t, out, "Derived")
	assert.Contains(t, out, "0-500")
	assert.Contains(t, out, "0.064")
	assert.Contains(t, out, "15.00%")
	assert.Contains(t, out, "$34.50")
	assert.Contains(t, out, "Breakdown")
	for _, it := range b.Components() {
		assert.Contains(t, out, it.Component)
	}
}

func TestWriteScenarios(t *testing.T) {
	engine := services.NewTariffEngine(domain.NovaXpressTariff())
	results := services.RunScenarios(engine)
	results = append(results, services.ScenarioResult{Name: "Too far", Err: domain.ErrDistanceOutOfRange})

	var buf bytes.Buffer
	require.NoError(t, WriteScenarios(&buf, results))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(results)+1)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario"))
	assert.Contains(t, lines[4], "$627.04")
	assert.Contains(t, lines[len(lines)-1], "error: Distance exceeds Zone 5")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteBreakdownReportsWriteErrors(t *testing.T) {
	err := WriteBreakdown(failingWriter{}, domain.PriceBreakdown{})
	assert.ErrorContains(t, err, "disk full")
}
