package numbering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturio/facturio/internal/utils/numbering"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "INV-00001", numbering.Format("INV", 1))
	assert.Equal(t, "PRO-00042", numbering.Format("PRO", 42))
	assert.Equal(t, "CMD-99999", numbering.Format("CMD", 99999))
	// sequence values past five digits keep growing rather than wrap
	assert.Equal(t, "PO-100000", numbering.Format("PO", 100000))
}

func TestParseSuffix(t *testing.T) {
	n, ok := numbering.ParseSuffix("INV-00007")
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)

	// only the part after the last dash counts
	n, ok = numbering.ParseSuffix("BL-2024-00012")
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	_, ok = numbering.ParseSuffix("INV-")
	assert.False(t, ok)

	_, ok = numbering.ParseSuffix("FREEFORM")
	assert.False(t, ok)

	_, ok = numbering.ParseSuffix("INV-abc")
	assert.False(t, ok)
}

func TestNext(t *testing.T) {
	// empty table starts at 1
	assert.Equal(t, "INV-00001", numbering.Next("INV", "", 0))

	// continues from the latest numeric suffix
	assert.Equal(t, "INV-00008", numbering.Next("INV", "INV-00007", 7))

	// count is ignored when the suffix parses
	assert.Equal(t, "PRO-00003", numbering.Next("PRO", "PRO-00002", 50))

	// unparseable latest falls back to count+1
	assert.Equal(t, "CMD-00013", numbering.Next("CMD", "LEGACY", 12))
}
