package heat

import "github.com/pkg/errors"

// Kernel is a square convolution kernel with non-negative integer weights.
// Sum is the divisor applied to every output cell, including at the borders
// where part of the kernel falls off the canvas.
type Kernel struct {
	Size    int
	Weights []float64
	Sum     float64
}

// Gaussian5 is the 5x5 binomial approximation of a Gaussian.
var Gaussian5 = Kernel{
	Size: 5,
	Weights: []float64{
		1, 4, 7, 4, 1,
		4, 16, 26, 16, 4,
		7, 26, 41, 26, 7,
		4, 16, 26, 16, 4,
		1, 4, 7, 4, 1,
	},
	Sum: 273,
}

// Binomial3 is the 3x3 binomial kernel.
var Binomial3 = Kernel{
	Size: 3,
	Weights: []float64{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	},
	Sum: 16,
}

// KernelByName resolves "gaussian5" or "binomial3".
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "gaussian5", "":
		return Gaussian5, nil
	case "binomial3":
		return Binomial3, nil
	}
	return Kernel{}, errors.Errorf("unknown smoothing kernel %q", name)
}

func (k Kernel) half() int { return k.Size / 2 }
