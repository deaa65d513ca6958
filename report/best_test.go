package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rs8bits/ATLAS/core"
)

func TestBestPerRatio(t *testing.T) {
	rows := []core.ConfigurationResult{
		{LogDisk: "HDD", DataDisk: "HDD", ReadRatio: 0, CPR: 7806.4},
		{LogDisk: "HDD", DataDisk: "HDD", ReadRatio: 1, CPR: 21077.3},
		{LogDisk: "HDD", DataDisk: "SSD", ReadRatio: 0, CPR: 6818.9},
		{LogDisk: "HDD", DataDisk: "SSD", ReadRatio: 1, CPR: 20229.6},
		{LogDisk: "SSD", DataDisk: "SSD", ReadRatio: 0, CPR: 8050.8},
		{LogDisk: "SSD", DataDisk: "SSD", ReadRatio: 1, CPR: 17957.2},
	}

	best := BestPerRatio(rows)
	require.Len(t, best, 2)

	// Ratios keep first-appearance order: 0 before 1.
	assert.Equal(t, 0.0, best[0].ReadRatio)
	assert.Equal(t, "SSD", best[0].LogDisk)
	assert.Equal(t, "SSD", best[0].DataDisk)

	assert.Equal(t, 1.0, best[1].ReadRatio)
	assert.Equal(t, "HDD", best[1].LogDisk)
	assert.Equal(t, "HDD", best[1].DataDisk)
}

func TestBestPerRatio_TieBreaksOnPairName(t *testing.T) {
	rows := []core.ConfigurationResult{
		{LogDisk: "zeta", DataDisk: "zeta", ReadRatio: 0.5, CPR: 100},
		{LogDisk: "alpha", DataDisk: "beta", ReadRatio: 0.5, CPR: 100},
		{LogDisk: "alpha", DataDisk: "alpha", ReadRatio: 0.5, CPR: 100},
	}

	best := BestPerRatio(rows)
	require.Len(t, best, 1)
	assert.Equal(t, "alpha", best[0].LogDisk)
	assert.Equal(t, "alpha", best[0].DataDisk)
}

func TestBestPerRatio_Empty(t *testing.T) {
	assert.Empty(t, BestPerRatio(nil))
}
