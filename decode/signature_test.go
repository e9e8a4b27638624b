package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cpuinfo/cpuid"
)

func TestSignature(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		eax            uint32
		stepping       uint32
		family         uint32
		extendedFamily uint32
	}){
		{0x00000000, 0x0, 0x0, 0x00},
		{0xffffffff, 0xf, 0xf, 0xff},
		{0x000906e9, 0x9, 0x6, 0x00}, // Coffee Lake: extended model 9, extended family 0.
		{0x00a20f12, 0x2, 0xf, 0x0a}, // Zen 3
		{0x00800f82, 0x2, 0xf, 0x08}, // Zen+
		{0x0ff00000, 0x0, 0x0, 0xff},
		{0xf000f0f0, 0x0, 0x0, 0x00},
	}

	for _, entry := range table {
		regs := cpuid.Regs{Eax: entry.eax, Ebx: 0xffffffff, Ecx: 0xffffffff, Edx: 0xffffffff}
		assert.Equal(entry.stepping, Stepping(regs), "%#08x", entry.eax)
		assert.Equal(entry.family, Family(regs), "%#08x", entry.eax)
		assert.Equal(entry.extendedFamily, ExtendedFamily(regs), "%#08x", entry.eax)
	}
}

func TestSteppingMask(t *testing.T) {
	assert := assert.New(t)

	for eax := uint32(0); eax < 0x10000; eax += 0x3b {
		regs := cpuid.Regs{Eax: eax}
		assert.Equal(eax&0xf, Stepping(regs))
		assert.Equal((eax>>8)&0xf, Family(regs))
	}
}
