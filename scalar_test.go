package watson_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logjammin/watson"
)

func TestBoolRoundTrip(t *testing.T) {
	ing := watson.NewBool(true)
	require.Equal(t, watson.TypeTrue, ing.Type())
	require.Equal(t, []byte{0x31}, ing.Bytes())
	require.True(t, watson.ToBool(ing))

	ing = watson.NewBool(false)
	require.Equal(t, watson.TypeFalse, ing.Type())
	require.Equal(t, []byte{0x30}, ing.Bytes())
	require.False(t, watson.ToBool(ing))
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{"", "Testing", "Testing.", "héllo wörld", string(make([]byte, 300))}

	for _, test := range tests {
		ing := watson.NewString(test)
		require.Equal(t, watson.TypeString, ing.Type())
		require.Equal(t, test, watson.ToString(ing))
	}

	// "Testing" encodes as a one-byte size class.
	ing := watson.NewString("Testing")
	require.Equal(t, []byte{0x73, 0x09, 'T', 'e', 's', 't', 'i', 'n', 'g'}, ing.Bytes())
}

func TestNumericRoundTrips(t *testing.T) {
	i32 := watson.NewInt32(-235867920)
	require.Equal(t, watson.TypeInt32, i32.Type())
	require.Equal(t, []byte{0x69, 0x06, 0xF0, 0xF0, 0xF0, 0xF1}, i32.Bytes())
	require.Equal(t, int32(-235867920), watson.ToInt32(i32))

	i64 := watson.NewInt64(-1)
	require.Equal(t, watson.TypeInt64, i64.Type())
	require.Equal(t, int64(-1), watson.ToInt64(i64))

	u64 := watson.NewUint64(math.MaxUint64)
	require.Equal(t, watson.TypeUint64, u64.Type())
	require.Equal(t, uint64(math.MaxUint64), watson.ToUint64(u64))

	f := watson.NewFloat64(3.25)
	require.Equal(t, watson.TypeFloat64, f.Type())
	require.Equal(t, 3.25, watson.ToFloat64(f))
}

func TestMismatchedConversionsYieldZero(t *testing.T) {
	str := watson.NewString("Testing")

	require.Equal(t, int32(0), watson.ToInt32(str))
	require.Equal(t, int64(0), watson.ToInt64(str))
	require.Equal(t, uint64(0), watson.ToUint64(str))
	require.Equal(t, 0.0, watson.ToFloat64(watson.NewInt64(42)))
	require.Nil(t, watson.ToFlags(str))
	require.Equal(t, "", watson.ToString(watson.NewFlags([]bool{true})))
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		ing  *watson.Ingredient
		want bool
	}{
		{"null", watson.Null(), false},
		{"false", watson.NewBool(false), false},
		{"true", watson.NewBool(true), true},
		{"zero int32", watson.NewInt32(0), false},
		{"nonzero int32", watson.NewInt32(7), true},
		{"zero int64", watson.NewInt64(0), false},
		{"nonzero int64", watson.NewInt64(-7), true},
		{"zero uint64", watson.NewUint64(0), false},
		{"nonzero uint64", watson.NewUint64(7), true},
		{"string", watson.NewString("anything"), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, watson.ToBool(test.ing))
		})
	}
}

func TestFlagsRoundTrip(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, true, true, false}

	ing := watson.NewFlags(bits)
	require.Equal(t, watson.TypeFlags, ing.Type())
	// Ten bits pack into two bytes, LSB first.
	require.Equal(t, []byte{0x8D, 0x01}, ing.Payload())

	got := watson.ToFlags(ing)
	// Decoding includes the pad bits of the final byte.
	require.Len(t, got, 16)
	require.Equal(t, bits, got[:len(bits)])
	for _, pad := range got[len(bits):] {
		require.False(t, pad)
	}
}

func TestToStringScalars(t *testing.T) {
	require.Equal(t, "null", watson.ToString(watson.Null()))
	require.Equal(t, "true", watson.ToString(watson.NewBool(true)))
	require.Equal(t, "false", watson.ToString(watson.NewBool(false)))
	require.Equal(t, "-235867920", watson.ToString(watson.NewInt32(-235867920)))
	require.Equal(t, "42", watson.ToString(watson.NewInt64(42)))
	require.Equal(t, "42", watson.ToString(watson.NewUint64(42)))
	require.Equal(t, "3.25", watson.ToString(watson.NewFloat64(3.25)))
}

func TestDump(t *testing.T) {
	require.Equal(t, "0x[3f={ 00 3f } { }]", watson.Dump(watson.Null()))
	require.Equal(t,
		"0x[73={ 01 33 } { 09 } 54 65 73 74 69 6e 67]",
		watson.Dump(watson.NewString("Testing")))
}
