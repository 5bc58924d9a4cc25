package detector

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// overlapAdd convolves long inputs with a fixed kernel block by block.
type overlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	plan      *algofft.Plan[complex128]
	block     []complex128
	product   []complex128
}

func newOverlapAdd(kernel []float64) (*overlapAdd, error) {
	blockSize := nextPowerOf2(len(kernel))
	if blockSize < 256 {
		blockSize = 256
	}
	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("detector: failed to create FFT plan: %w", err)
	}
	oa := &overlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		plan:      plan,
		block:     make([]complex128, fftSize),
		product:   make([]complex128, fftSize),
	}
	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("detector: kernel FFT failed: %w", err)
	}
	return oa, nil
}

// process returns the full linear convolution of input with the kernel.
func (oa *overlapAdd) process(input []float64) ([]float64, error) {
	out := make([]float64, len(input)+oa.kernelLen-1)
	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		for i := range oa.block {
			oa.block[i] = 0
		}
		for i, v := range input[start:end] {
			oa.block[i] = complex(v, 0)
		}
		if err := oa.plan.Forward(oa.block, oa.block); err != nil {
			return nil, fmt.Errorf("detector: forward FFT failed: %w", err)
		}
		for i := range oa.product {
			oa.product[i] = oa.block[i] * oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(oa.product, oa.product); err != nil {
			return nil, fmt.Errorf("detector: inverse FFT failed: %w", err)
		}
		n := end - start + oa.kernelLen - 1
		for i := 0; i < n && start+i < len(out); i++ {
			out[start+i] += real(oa.product[i])
		}
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
