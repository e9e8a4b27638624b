//go:build 386 || amd64

package cpuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/cpu"
)

func TestHardware(t *testing.T) {
	assert := assert.New(t)

	q, err := Native()
	assert.NoError(err)

	vendor := q.Query(LEAF_VENDOR, 0)
	assert.GreaterOrEqual(vendor.Eax, LEAF_FEATURE, "maximum basic leaf")

	feature := q.Query(LEAF_FEATURE, 0)
	assert.Equal(cpu.X86.HasSSE2, feature.Edx&(1<<26) != 0)
	assert.Equal(cpu.X86.HasSSE3, feature.Ecx&(1<<0) != 0)
	assert.Equal(cpu.X86.HasPCLMULQDQ, feature.Ecx&(1<<1) != 0)
	assert.Equal(cpu.X86.HasSSSE3, feature.Ecx&(1<<9) != 0)
	assert.Equal(cpu.X86.HasCX16, feature.Ecx&(1<<13) != 0)
	assert.Equal(cpu.X86.HasSSE41, feature.Ecx&(1<<19) != 0)
	assert.Equal(cpu.X86.HasSSE42, feature.Ecx&(1<<20) != 0)
	assert.Equal(cpu.X86.HasPOPCNT, feature.Ecx&(1<<23) != 0)
	assert.Equal(cpu.X86.HasAES, feature.Ecx&(1<<25) != 0)
	assert.Equal(cpu.X86.HasOSXSAVE, feature.Ecx&(1<<27) != 0)
	assert.Equal(cpu.X86.HasRDRAND, feature.Ecx&(1<<30) != 0)
}
