package shaderc

import "fmt"

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic uint32 = 0x07230203

// spirvWords converts SPIR-V bytes to a uint32 slice.
// SPIR-V is little-endian 32-bit words.
func spirvWords(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", ErrInvalidSPIRV, len(b))
	}

	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}

	if len(words) > 0 && words[0] != SPIRVMagic {
		return nil, fmt.Errorf("%w: bad magic 0x%08x", ErrInvalidSPIRV, words[0])
	}
	return words, nil
}
