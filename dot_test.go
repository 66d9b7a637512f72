package thompson

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDOT(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteDOT(buf, MustCompile("a*")))

	want := `digraph thompson {
    rankdir=LR;
    label="a*";
    s0 [shape=circle];
    s0 -> s0 [label="a"];
    s0 -> accept [label="ε"];
    accept [shape=doublecircle];
    _start [shape=point]; _start -> s0;
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteDOT_Union(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteDOT(buf, MustCompile("a|b")))
	assert.Contains(t, buf.String(), `s2 -> s0 [label="ε"];`)
	assert.Contains(t, buf.String(), `s2 -> s1 [label="ε"];`)
	assert.Contains(t, buf.String(), `s1 -> accept [label="b"];`)
	assert.Contains(t, buf.String(), `_start -> s2;`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteDOT_WriterError(t *testing.T) {
	err := WriteDOT(failingWriter{}, MustCompile("a"))
	assert.EqualError(t, err, "disk full")
}
