package decode

import (
	"encoding/binary"

	"github.com/ezrec/cpuinfo/cpuid"
)

const VENDOR_SIZE = 12 // Bytes in a vendor identifier.

// VendorBytes returns the leaf 0 identifier bytes, ordered ebx, edx, ecx.
func VendorBytes(regs cpuid.Regs) (data []byte) {
	data = make([]byte, 0, VENDOR_SIZE)
	data = binary.LittleEndian.AppendUint32(data, regs.Ebx)
	data = binary.LittleEndian.AppendUint32(data, regs.Edx)
	data = binary.LittleEndian.AppendUint32(data, regs.Ecx)
	return
}

// Vendor decodes the leaf 0 vendor identifier, such as "GenuineIntel".
// Bytes outside of printable ASCII are an *ErrDecode.
func Vendor(regs cpuid.Regs) (vendor string, err error) {
	data := VendorBytes(regs)
	for n, c := range data {
		if c < 0x20 || c > 0x7e {
			err = &ErrDecode{Field: "vendor", Data: data, Offset: n, Err: ErrVendorText}
			return
		}
	}

	vendor = string(data)
	return
}
