package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")

	assert.Equal("vendor text invalid", From("vendor text invalid"))
	assert.Equal("leaf 1 subleaf 0", From("leaf %d subleaf %d", 1, 0))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	SetLocales()

	buff := &bytes.Buffer{}
	n, err := Fprintf(buff, "Stepping: %v\n", uint32(9))
	assert.NoError(err)
	assert.Equal(12, n)
	assert.Equal("Stepping: 9\n", buff.String())
}
