package huffman

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCode_Textbook(t *testing.T) {
	cb, err := BuildCode(Weights{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"Codebook{\n",
		"\tMaxLen() = 4\n",
		"\t'a' = \"1100\"\n",
		"\t'b' = \"1101\"\n",
		"\t'c' = \"100\"\n",
		"\t'd' = \"101\"\n",
		"\t'e' = \"111\"\n",
		"\t'f' = \"0\"\n",
		"}\n",
	}, "")
	var buf strings.Builder
	_, err = cb.Dump(&buf)
	require.NoError(t, err)
	require.Equal(t, expectDump, buf.String())
}

func TestBuildCode_ScenarioA(t *testing.T) {
	cb, err := BuildCode(Frequencies([]byte("AAAAB")))
	require.NoError(t, err)
	require.Len(t, cb, 2)
	require.Len(t, cb['A'], 1)
	require.Len(t, cb['B'], 1)
	require.NotEqual(t, cb['A'], cb['B'])
}

func TestBuildCode_Empty(t *testing.T) {
	cb, err := BuildCode(Weights{})
	require.NoError(t, err)
	require.NotNil(t, cb)
	require.Empty(t, cb)
}

func TestBuildCode_PrefixFreeAndDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		n := 1 + rng.IntN(256)
		w := make(Weights, n)
		for len(w) < n {
			// Small weight range forces plenty of ties.
			w[Symbol(rng.IntN(256))] = float64(rng.IntN(4))
		}
		first, err := BuildCode(w)
		require.NoError(t, err)
		second, err := BuildCode(w)
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Len(t, first, n)
		require.True(t, first.IsPrefixFree())
		for _, code := range first {
			require.NotEmpty(t, code)
		}
	}
}

func TestCodebook_IsPrefixFree(t *testing.T) {
	require.True(t, Codebook{}.IsPrefixFree())
	require.True(t, Codebook{'a': "0", 'b': "10", 'c': "11"}.IsPrefixFree())
	require.False(t, Codebook{'a': "1", 'b': "10"}.IsPrefixFree())
	require.False(t, Codebook{'a': "01", 'b': "01"}.IsPrefixFree())
	require.False(t, Codebook{'a': ""}.IsPrefixFree())
}

func TestCodebook_Symbols(t *testing.T) {
	cb := Codebook{'z': "1", 'a': "01", 'm': "00"}
	require.Equal(t, []Symbol{'a', 'm', 'z'}, cb.Symbols())
	require.Equal(t, 2, cb.MaxLen())
}

func TestCodebook_MarshalBinary(t *testing.T) {
	cb := Codebook{'a': "0", 'b': "10", 'c': "110000001"}
	raw, err := cb.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x00, 0x03,
		'a', 0x00, 0x01, 0x00,
		'b', 0x00, 0x02, 0x80,
		'c', 0x00, 0x09, 0xc0, 0x80,
	}, raw)

	r := bytes.NewReader(append(raw, 0xff))
	got, err := UnmarshalCodebook(r)
	require.NoError(t, err)
	require.Equal(t, cb, got)
	require.Equal(t, 1, r.Len())
}

func TestCodebook_MarshalEmpty(t *testing.T) {
	raw, err := Codebook{}.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0}, raw)
	got, err := UnmarshalCodebook(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUnmarshalCodebook_Malformed(t *testing.T) {
	for name, raw := range map[string][]byte{
		"empty":         {},
		"short count":   {0x00},
		"too many":      {0x01, 0x01},
		"missing entry": {0x00, 0x01},
		"short entry":   {0x00, 0x01, 'a', 0x00},
		"zero length":   {0x00, 0x01, 'a', 0x00, 0x00},
		"missing bits":  {0x00, 0x01, 'a', 0x00, 0x09, 0x00},
		"duplicate":     {0x00, 0x02, 'a', 0x00, 0x01, 0x00, 'a', 0x00, 0x01, 0x80},
		"prefix":        {0x00, 0x02, 'a', 0x00, 0x01, 0x80, 'b', 0x00, 0x02, 0x80},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := UnmarshalCodebook(bytes.NewReader(raw))
			require.ErrorIs(t, err, ErrMalformedCodebook)
		})
	}
}

func TestCodebook_MarshalRejectsBadCodewords(t *testing.T) {
	_, err := Codebook{'a': ""}.MarshalBinary()
	require.ErrorIs(t, err, ErrMalformedCodebook)
	_, err = Codebook{'a': "0x"}.MarshalBinary()
	require.ErrorIs(t, err, ErrInvalidBit)
}
