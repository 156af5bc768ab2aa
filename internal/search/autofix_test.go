package search_test

import (
	"testing"

	"datascout/internal/search"

	"github.com/stretchr/testify/assert"
)

func TestAutoFixFilename(t *testing.T) {
	tool := search.New()

	t.Run("space becomes underscore on match", func(t *testing.T) {
		fixed := tool.AutoFixFilename("Sample_01", "Sample 01.raw")
		assert.Equal(t, "Sample_01.raw", fixed)
	})

	t.Run("no match returns original untouched", func(t *testing.T) {
		fixed := tool.AutoFixFilename("Sample_99", "Sample 01.raw")
		assert.Equal(t, "Sample 01.raw", fixed)
	})

	t.Run("clean filename passes through", func(t *testing.T) {
		fixed := tool.AutoFixFilename("Sample_01", "Sample_01.raw")
		assert.Equal(t, "Sample_01.raw", fixed)
	})

	t.Run("multiple special characters in one stem", func(t *testing.T) {
		fixed := tool.AutoFixFilename("Blank_5pct_acetone", "Blank 5% acetone.raw")
		assert.Equal(t, "Blank_5pct_acetone.raw", fixed)
	})

	t.Run("dot in stem collapses but extension survives", func(t *testing.T) {
		fixed := tool.AutoFixFilename("Run_2pt5", "Run 2.5.raw")
		assert.Equal(t, "Run_2pt5.raw", fixed)
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		fixed := tool.AutoFixFilename("sample_01", "SAMPLE 01.raw")
		assert.Equal(t, "SAMPLE_01.raw", fixed)
	})
}

func TestAutoFixFilenameCustomTable(t *testing.T) {
	fixes := []search.CharFix{{Find: '-', Replace: "_"}}

	fixed := search.AutoFixFilename("Sample_01", "Sample-01.raw", fixes)
	assert.Equal(t, "Sample_01.raw", fixed)

	// default table characters are not mapped by the custom table
	fixed = search.AutoFixFilename("Sample_01", "Sample 01.raw", fixes)
	assert.Equal(t, "Sample 01.raw", fixed)
}

func TestToolAutoFixesReturnsCopy(t *testing.T) {
	tool := search.NewWithFixes([]search.CharFix{{Find: '-', Replace: "_"}}, search.LogNotifier{})

	fixes := tool.AutoFixes()
	assert.Equal(t, []search.CharFix{{Find: '-', Replace: "_"}}, fixes)

	// mutating the returned slice must not touch the tool's table
	fixes[0] = search.CharFix{Find: '!', Replace: "bang"}
	assert.Equal(t, "Sample_01.raw", tool.AutoFixFilename("Sample_01", "Sample-01.raw"))
}

func TestDefaultAutoFixes(t *testing.T) {
	fixes := search.DefaultAutoFixes()
	assert.Len(t, fixes, 3)
	assert.Equal(t, ' ', fixes[0].Find)
	assert.Equal(t, "_", fixes[0].Replace)
	assert.Equal(t, '%', fixes[1].Find)
	assert.Equal(t, "pct", fixes[1].Replace)
	assert.Equal(t, '.', fixes[2].Find)
	assert.Equal(t, "pt", fixes[2].Replace)
}
