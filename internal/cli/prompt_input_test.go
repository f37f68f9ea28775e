package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes lf", input: "y\n", want: true},
		{name: "yes word mixed case", input: "YeS\n", want: true},
		{name: "yes cr", input: "yes\r", want: true},
		{name: "empty defaults no", input: "\n", want: false},
		{name: "empty defaults yes", input: "\n", defaultYes: true, want: true},
		{name: "explicit no overrides default", input: "n\n", defaultYes: true, want: false},
		{name: "eof without input", input: "", defaultYes: true, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got := confirm(strings.NewReader(tc.input), &out, "Delete? [y/N]: ", tc.defaultYes)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Delete? [y/N]: ", out.String())
		})
	}
}

func TestReadPromptLine(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("2\n3\rlast")

	first, err := readPromptLine(r)
	assert.NoError(t, err)
	assert.Equal(t, "2", first)

	second, err := readPromptLine(r)
	assert.NoError(t, err)
	assert.Equal(t, "3", second)

	third, err := readPromptLine(r)
	assert.NoError(t, err)
	assert.Equal(t, "last", third)

	_, err = readPromptLine(r)
	assert.ErrorIs(t, err, io.EOF)
}
