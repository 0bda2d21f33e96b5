package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Radius float64 `json:"radius"`
	Points []struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"points"`
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		c, err := New(name, "")
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	c, err := New("", "")
	require.NoError(t, err)
	assert.Equal(t, Default.Name(), c.Name())

	_, err = New("msgpack", "")
	require.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), "msgpack")
}

func TestCodecsAgree(t *testing.T) {
	input := []byte(`{"points":[{"x":1,"y":-2},{"x":3.5,"y":4}],"radius":2}`)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := New(name, "")
			require.NoError(t, err)

			var d doc
			require.NoError(t, c.Unmarshal(input, &d))
			assert.Equal(t, 2.0, d.Radius)
			require.Len(t, d.Points, 2)
			assert.Equal(t, -2.0, d.Points[0].Y)
			assert.Equal(t, 3.5, d.Points[1].X)

			out, err := c.Marshal(d)
			require.NoError(t, err)
			assert.JSONEq(t, string(input), string(out))
		})
	}
}

func TestCodecsIndent(t *testing.T) {
	want := "{\n  \"a\": [\n    1\n  ]\n}"
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := New(name, "  ")
			require.NoError(t, err)

			out, err := c.Marshal(map[string][]int{"a": {1}})
			require.NoError(t, err)
			assert.Equal(t, want, string(out))
		})
	}
}

func TestMarshal_Unsupported(t *testing.T) {
	for _, name := range Names() {
		c, err := New(name, "")
		require.NoError(t, err)
		_, err = c.Marshal(func() {})
		assert.Error(t, err, name)
	}
}
