// v0
// internal/idf/scanner_test.go
package idf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(raw string) []Record {
	var out []Record
	sc := NewScanner(raw)
	for {
		rec, ok := sc.Next()
		if !ok {
			return out
		}
		out = append(out, rec)
	}
}

func TestScannerStripsCommentsAndSemicolons(t *testing.T) {
	recs := collect("Zone,Core,100; ! floor area in m2\n! whole line comment\nLights,L1,Core,Sched,10;\n")
	require.Len(t, recs, 2)
	assert.Equal(t, Record{Kind: "zone", Fields: []string{"Zone", "Core", "100"}}, recs[0])
	assert.Equal(t, "lights", recs[1].Kind)
}

func TestScannerTrimsFields(t *testing.T) {
	recs := collect("  Lights , L1 , Z1 , Sched , 10.0 ;\n")
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"Lights", "L1", "Z1", "Sched", "10.0"}, recs[0].Fields)
}

func TestScannerSkipsNonRecords(t *testing.T) {
	recs := collect("\n\nVersion 9.4\njust some prose without commas\n")
	assert.Empty(t, recs)
}

func TestRecordFieldOutOfRange(t *testing.T) {
	recs := collect("Zone,OnlyName\n")
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].Field(5))
	assert.Equal(t, "", recs[0].Field(-1))
	assert.Equal(t, "OnlyName", recs[0].Field(1))
}
