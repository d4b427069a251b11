package encoding_test

import (
	"fmt"
	"testing"

	"github.com/logjammin/watson/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestMarkerRoundTrip(t *testing.T) {
	tests := []struct {
		class uint8
		typ   byte
		want  byte
	}{
		{encoding.SizeZero, 0x3F, 0x3F},
		{encoding.SizeZero, 0x30, 0x30},
		{encoding.SizeOne, 0x33, 0x73},
		{encoding.SizeOne, 0x03, 0x43},
		{encoding.SizeOne, 0x29, 0x69},
		{encoding.SizeTwo, 0x0D, 0x8D},
		{encoding.SizeEight, 0x02, 0xC2},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%#x", test.want), func(t *testing.T) {
			m := encoding.Marker(test.class, test.typ)
			require.Equal(t, test.want, m)
			require.Equal(t, test.class, encoding.SizeClass(m))
			require.Equal(t, test.typ, encoding.TypeBits(m))
		})
	}
}

func TestClassFor(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint8
	}{
		{0, encoding.SizeZero},
		{1, encoding.SizeOne},
		{253, encoding.SizeOne},
		{254, encoding.SizeTwo},
		{65533, encoding.SizeTwo},
		{65534, encoding.SizeEight},
		{1 << 32, encoding.SizeEight},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.n), func(t *testing.T) {
			require.Equal(t, test.want, encoding.ClassFor(test.n))
		})
	}
}

func TestFieldAndHeaderSizes(t *testing.T) {
	require.Equal(t, 0, encoding.FieldSize(encoding.SizeZero))
	require.Equal(t, 1, encoding.FieldSize(encoding.SizeOne))
	require.Equal(t, 2, encoding.FieldSize(encoding.SizeTwo))
	require.Equal(t, 8, encoding.FieldSize(encoding.SizeEight))

	require.Equal(t, 1, encoding.HeaderSize(encoding.SizeZero))
	require.Equal(t, 2, encoding.HeaderSize(encoding.SizeOne))
	require.Equal(t, 3, encoding.HeaderSize(encoding.SizeTwo))
	require.Equal(t, 9, encoding.HeaderSize(encoding.SizeEight))
}

func TestAppendHeader(t *testing.T) {
	tests := []struct {
		name       string
		typ        byte
		payloadLen uint64
		want       []byte
	}{
		{"zero class", 0x3F, 0, []byte{0x3F}},
		{"one byte field", 0x33, 7, []byte{0x73, 0x09}},
		{"two byte field", 0x03, 300, []byte{0x83, 0x2F, 0x01}},
		{"eight byte field", 0x02, 65534, []byte{0xC2, 0x07, 0x00, 0x01, 0, 0, 0, 0, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := encoding.AppendHeader(nil, test.typ, test.payloadLen)
			require.Equal(t, test.want, got)
		})
	}
}

func TestTotalSize(t *testing.T) {
	// String header for "Testing": marker 0x73, total 9.
	total, hdr := encoding.TotalSize([]byte{0x73, 0x09, 'T', 'e', 's', 't', 'i', 'n', 'g'})
	require.Equal(t, uint64(9), total)
	require.Equal(t, 2, hdr)

	// Zero class is always one byte.
	total, hdr = encoding.TotalSize([]byte{0x3F})
	require.Equal(t, uint64(1), total)
	require.Equal(t, 1, hdr)

	// Too short to hold the declared size field.
	total, hdr = encoding.TotalSize([]byte{0x8D, 0x10})
	require.Equal(t, uint64(0), total)
	require.Equal(t, 0, hdr)

	total, hdr = encoding.TotalSize(nil)
	require.Equal(t, uint64(0), total)
	require.Equal(t, 0, hdr)
}

func TestFixedRoundTrip(t *testing.T) {
	b := encoding.AppendFixed(nil, uint32(0xF1F0F0F0), 4)
	require.Equal(t, []byte{0xF0, 0xF0, 0xF0, 0xF1}, b)
	require.Equal(t, uint32(0xF1F0F0F0), encoding.Fixed[uint32](b, 4))

	b = encoding.AppendFixed(nil, uint64(0x0102030405060708), 8)
	require.Equal(t, uint64(0x0102030405060708), encoding.Fixed[uint64](b, 8))
}
