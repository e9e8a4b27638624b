package cpuid

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNative(t *testing.T) {
	assert := assert.New(t)

	q, err := Native()
	if supported {
		assert.NoError(err)
		assert.Equal(hardware{}, q)
	} else {
		assert.Nil(q)
		assert.Equal(ErrUnsupportedPlatform(runtime.GOARCH), err)
	}
}

func TestErrUnsupportedPlatform(t *testing.T) {
	assert := assert.New(t)

	var err error = ErrUnsupportedPlatform("riscv64")

	assert.True(errors.Is(err, ErrUnsupported))
	assert.True(errors.Is(err, ErrUnsupportedPlatform("")))
	assert.False(errors.Is(err, errors.New("other")))
	assert.Contains(err.Error(), "riscv64")
	assert.Contains(err.Error(), ErrUnsupported.Error())
}
