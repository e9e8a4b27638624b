package cpuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanned(t *testing.T) {
	assert := assert.New(t)

	vendor := Regs{Eax: 0x16, Ebx: 0x756e6547, Ecx: 0x6c65746e, Edx: 0x49656e69}
	feature := Regs{Eax: 0x000906e9, Ebx: 0x00100800, Ecx: 0x7ffafbff, Edx: 0xbfebfbff}

	cq := NewCanned(vendor, feature)

	table := [](struct {
		leaf    uint32
		subleaf uint32
		regs    Regs
	}){
		{LEAF_VENDOR, 0, vendor},
		{LEAF_FEATURE, 0, feature},
		{LEAF_FEATURE, 1, Regs{}},
		{7, 0, Regs{}},
		{LEAF_FEATURE, 0, feature},
	}

	for _, entry := range table {
		assert.Equal(entry.regs, cq.Query(entry.leaf, entry.subleaf), "%v/%v", entry.leaf, entry.subleaf)
	}

	assert.Equal(1, cq.Calls[Leaf{Leaf: LEAF_VENDOR}])
	assert.Equal(2, cq.Calls[Leaf{Leaf: LEAF_FEATURE}])
	assert.Equal(1, cq.Calls[Leaf{Leaf: LEAF_FEATURE, Subleaf: 1}])
	assert.Equal(1, cq.Calls[Leaf{Leaf: 7}])
}

func TestCannedZero(t *testing.T) {
	assert := assert.New(t)

	cq := &Canned{}
	assert.Equal(Regs{}, cq.Query(LEAF_VENDOR, 0))
	assert.Equal(1, cq.Calls[Leaf{}])
}

func TestRegsString(t *testing.T) {
	assert := assert.New(t)

	regs := Regs{Eax: 0x000906e9, Ebx: 0x756e6547, Ecx: 0x6c65746e, Edx: 0x49656e69}
	assert.Equal("eax=000906e9 ebx=756e6547 ecx=6c65746e edx=49656e69", regs.String())
}
