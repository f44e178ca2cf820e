package filter

import (
	"math"
	"sync"
)

// GaussianKernel returns a normalized 1D Gaussian kernel with standard
// deviation sigma, covering three deviations on each side.
// sigma <= 0 gives the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 || math.IsNaN(sigma) {
		return []float32{1}
	}

	half := KernelRadius(sigma)
	kernel := make([]float32, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// KernelRadius returns the number of pixels a blur of the given sigma
// reaches on each side.
func KernelRadius(sigma float64) int {
	if sigma <= 0 || math.IsNaN(sigma) {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// kernelCache memoizes kernels by sigma quantized to 1/100 pixel.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int][]float32
	max     int
}

var kernels = &kernelCache{kernels: make(map[int][]float32), max: 64}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	k, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(sigma)

	c.mu.Lock()
	if len(c.kernels) >= c.max {
		clear(c.kernels)
	}
	c.kernels[key] = k
	c.mu.Unlock()
	return k
}

// floatBuffer wraps a slice for sync.Pool.
type floatBuffer struct {
	data []float32
}

var floatPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

// getFloats returns a zeroed buffer of n floats.
func getFloats(n int) *floatBuffer {
	b := floatPool.Get().(*floatBuffer)
	if cap(b.data) < n {
		b.data = make([]float32, n)
	} else {
		b.data = b.data[:n]
		clear(b.data)
	}
	return b
}

func putFloats(b *floatBuffer) {
	if cap(b.data) <= 16<<20 {
		floatPool.Put(b)
	}
}

// convolve blurs a planar buffer of w×h pixels with ch channels per pixel
// in place, horizontally with kx and vertically with ky. Samples outside
// the buffer count as zero.
func convolve(data []float32, w, h, ch int, kx, ky []float32) {
	tmp := getFloats(len(data))
	defer putFloats(tmp)

	if len(kx) > 1 {
		half := len(kx) / 2
		for y := 0; y < h; y++ {
			row := y * w * ch
			for x := 0; x < w; x++ {
				for c := 0; c < ch; c++ {
					var sum float32
					for k, weight := range kx {
						sx := x + k - half
						if sx < 0 || sx >= w {
							continue
						}
						sum += data[row+sx*ch+c] * weight
					}
					tmp.data[row+x*ch+c] = sum
				}
			}
		}
		copy(data, tmp.data)
	}

	if len(ky) > 1 {
		half := len(ky) / 2
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for c := 0; c < ch; c++ {
					var sum float32
					for k, weight := range ky {
						sy := y + k - half
						if sy < 0 || sy >= h {
							continue
						}
						sum += data[(sy*w+x)*ch+c] * weight
					}
					tmp.data[(y*w+x)*ch+c] = sum
				}
			}
		}
		copy(data, tmp.data)
	}
}

// clampUint8 rounds v to the nearest byte, saturating.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
