package main

import (
	"bytes"
	"errors"
	"freight-tariff-service/internal/domain"
	"freight-tariff-service/internal/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *services.TariffEngine {
	return services.NewTariffEngine(domain.NovaXpressTariff())
}

func TestRunDefaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, newEngine()))

	assert.Contains(t, out.String(), "$34.50")
}

func TestRunCompositeShipment(t *testing.T) {
	args := []string{
		"-distance", "350", "-weight", "3200",
		"-ooa-type", "full", "-ooa-km", "60",
		"-acc", domain.AccessorialTailgate, "-acc", domain.AccessorialWhiteGlove,
		"-wait", "50", "-stops", "1",
	}

	var out bytes.Buffer
	require.NoError(t, run(args, &out, newEngine()))

	assert.Contains(t, out.String(), "2001-4000")
	assert.Contains(t, out.String(), "$627.04")
}

func TestRunFuelFlags(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-fuel", "12"}, &out, newEngine()))
	assert.Contains(t, out.String(), "$33.60")

	out.Reset()
	require.NoError(t, run([]string{"-no-fuel", "-fuel", "12"}, &out, newEngine()))
	assert.Contains(t, out.String(), "Grand Total")
	assert.Contains(t, out.String(), "0.00%")
}

func TestRunDistanceOutOfRange(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-distance", "650"}, &out, newEngine())

	require.ErrorIs(t, err, domain.ErrDistanceOutOfRange)
	assert.NotContains(t, out.String(), "Grand Total")
}

func TestRunOutOfAreaKmDefaultsToFull(t *testing.T) {
	base := []string{"-distance", "350", "-weight", "3200"}

	var plain, kmOnly, explicit bytes.Buffer
	require.NoError(t, run(base, &plain, newEngine()))
	require.NoError(t, run(append(base, "-ooa-km", "60"), &kmOnly, newEngine()))
	require.NoError(t, run(append(base, "-ooa-type", "FULL", "-ooa-km", "60"), &explicit, newEngine()))

	assert.Equal(t, explicit.String(), kmOnly.String())
	assert.NotEqual(t, plain.String(), kmOnly.String())
}

func TestRunRejectsUnknownOutOfAreaType(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-ooa-type", "sideways", "-ooa-km", "5"}, &out, newEngine())

	assert.ErrorContains(t, err, "unknown out-of-area type")
}

func TestRunScenarios(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-scenarios"}, &out, newEngine()))

	assert.Contains(t, out.String(), "Fuel override 0%")
	assert.Contains(t, out.String(), "$445.25")
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-list"}, &out, newEngine()))

	assert.Contains(t, out.String(), domain.AccessorialDirectDrive)
	assert.Contains(t, out.String(), "BACKHAUL EMPTY")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunListReportsWriteError(t *testing.T) {
	err := run([]string{"-list"}, failingWriter{}, newEngine())

	assert.ErrorContains(t, err, "write options")
	assert.ErrorContains(t, err, "disk full")
}
