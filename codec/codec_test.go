package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statview/stats"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestRoundtrip(t *testing.T) {
	data := &stats.DatasetFeatureStatistics{
		Name:        "train",
		NumExamples: 10,
		Features: []stats.FeatureNameStatistics{
			{
				Name: "a",
				Type: stats.TypeInt,
				NumStats: &stats.NumericStatistics{
					CommonStats: &stats.CommonStatistics{NumNonMissing: 8},
					Mean:        1.5,
				},
			},
		},
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(data)
			require.NoError(t, err)

			var got stats.DatasetFeatureStatistics
			require.NoError(t, c.Unmarshal(b, &got))
			assert.Equal(t, *data, got)
		})
	}
}

func TestCrossCodecCompatibility(t *testing.T) {
	// Both codecs speak JSON: bytes written by one decode with the other.
	data := &stats.DatasetFeatureStatistics{Name: "train", NumExamples: 3}

	b := MustMarshal(JSON{}, data)
	var got stats.DatasetFeatureStatistics
	require.NoError(t, (GoJSON{}).Unmarshal(b, &got))
	assert.Equal(t, *data, got)
}
