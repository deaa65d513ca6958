package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rs8bits/ATLAS/core"
)

func TestSortUCPRDescending(t *testing.T) {
	results := []core.UCPRResult{
		{LogDisk: "HDD", DataDisk: "HDD", UCPR: 12956.9},
		{LogDisk: "HDD", DataDisk: "SSD", UCPR: 12412.7},
		{LogDisk: "SSD", DataDisk: "HDD", UCPR: 12780.6},
		{LogDisk: "SSD", DataDisk: "SSD", UCPR: 12268.5},
	}

	SortUCPRDescending(results)

	want := []core.UCPRResult{
		{LogDisk: "HDD", DataDisk: "HDD", UCPR: 12956.9},
		{LogDisk: "SSD", DataDisk: "HDD", UCPR: 12780.6},
		{LogDisk: "HDD", DataDisk: "SSD", UCPR: 12412.7},
		{LogDisk: "SSD", DataDisk: "SSD", UCPR: 12268.5},
	}
	assert.Equal(t, want, results)
}

func TestSortUCPRDescending_TieBreaksOnPairName(t *testing.T) {
	results := []core.UCPRResult{
		{LogDisk: "beta", DataDisk: "alpha", UCPR: 500},
		{LogDisk: "alpha", DataDisk: "beta", UCPR: 500},
		{LogDisk: "alpha", DataDisk: "alpha", UCPR: 500},
	}

	SortUCPRDescending(results)

	assert.Equal(t, "alpha", results[0].LogDisk)
	assert.Equal(t, "alpha", results[0].DataDisk)
	assert.Equal(t, "alpha", results[1].LogDisk)
	assert.Equal(t, "beta", results[1].DataDisk)
	assert.Equal(t, "beta", results[2].LogDisk)
}
