package housing

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseLot(t *testing.T) {
	tests := []struct {
		name string
		lot  string
		want Address
	}{
		{name: "first lot", lot: "A1", want: Address{Row: 0, Col: 0}},
		{name: "multi digit row", lot: "C12", want: Address{Row: 11, Col: 2}},
		{name: "last default column", lot: "T50", want: Address{Row: 49, Col: 19}},
		{name: "leading zero", lot: "B07", want: Address{Row: 6, Col: 1}},
		{name: "letter Z", lot: "Z3", want: Address{Row: 2, Col: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLot(tt.lot)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseLot_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		lot    string
		reason string
	}{
		{name: "empty", lot: "", reason: "empty"},
		{name: "lowercase column", lot: "a1", reason: "uppercase letter"},
		{name: "digit column", lot: "11", reason: "uppercase letter"},
		{name: "no row", lot: "A", reason: "missing row"},
		{name: "non digit suffix", lot: "A1x", reason: "decimal digits"},
		{name: "signed row", lot: "A-1", reason: "decimal digits"},
		{name: "row zero", lot: "A0", reason: "rows start at 1"},
		{name: "huge row", lot: "A99999999999999999999999", reason: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLot(tt.lot)
			require.Error(t, err)

			var malformed *MalformedLotError
			require.ErrorAs(t, err, &malformed)
			require.Equal(t, tt.lot, malformed.Lot)
			require.Contains(t, malformed.Reason, tt.reason)
		})
	}
}

func TestColumnAndRow(t *testing.T) {
	col, err := Column("D9")
	require.NoError(t, err)
	require.Equal(t, 3, col)

	row, err := Row("D9")
	require.NoError(t, err)
	require.Equal(t, 8, row)
}

func TestAddressLot(t *testing.T) {
	require.Equal(t, "A1", Address{}.Lot())
	require.Equal(t, "T50", Address{Row: 49, Col: 19}.Lot())
}

func TestProperty_LotRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		col := rapid.IntRange(0, MaxCols-1).Draw(t, "col")
		row := rapid.IntRange(0, 9999).Draw(t, "row")

		lot := string(rune('A'+col)) + strconv.Itoa(row+1)
		addr, err := ParseLot(lot)
		require.NoError(t, err)
		require.Equal(t, Address{Row: row, Col: col}, addr)
		require.Equal(t, lot, addr.Lot())
	})
}
