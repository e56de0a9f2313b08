package biquad

import _ "github.com/cwbudde/algo-kernels/dsp/filter/biquad/internal/arch/generic" // register the portable backend
