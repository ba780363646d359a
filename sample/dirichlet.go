/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/json"

	"golang.org/x/exp/rand"

	"github.com/fentec-project/variate/data"
)

// stickBreakingThreshold decides which sampling method a Dirichlet
// instance uses. When every concentration parameter is at most this
// value, gamma variates with such small shapes underflow to exact zero
// often enough that normalizing them can divide zero by zero, so the
// stick-breaking method is used instead. The value is an empirical
// stability heuristic, not a mathematical boundary.
const stickBreakingThreshold = 0.1

// Dirichlet samples random points on the probability simplex from the
// Dirichlet probability distribution determined by the vector alpha of
// positive concentration parameters.
//
// An instance is immutable once constructed and may be shared by any
// number of goroutines, each sampling through its own source of
// randomness.
type Dirichlet struct {
	alpha data.Vector
}

// NewDirichlet returns an instance of the Dirichlet sampler with the
// given concentration parameters. It requires at least 2 parameters,
// each a positive number, otherwise an error is returned. The input
// slice is copied and can be modified freely afterwards.
func NewDirichlet(alpha []float64) (*Dirichlet, error) {
	if len(alpha) < 2 {
		return nil, ErrAlphaTooShort
	}
	for _, ai := range alpha {
		// the negated comparison also rejects NaN values
		if !(ai > 0) {
			return nil, ErrValueNotPositive
		}
	}

	return &Dirichlet{alpha: data.NewVector(alpha).Copy()}, nil
}

// NewDirichletSymmetric returns an instance of the Dirichlet sampler
// with the single concentration parameter alpha repeated size times.
// It requires a positive alpha and size of at least 2, otherwise an
// error is returned.
func NewDirichletSymmetric(alpha float64, size int) (*Dirichlet, error) {
	if !(alpha > 0) {
		return nil, ErrValueNotPositive
	}
	if size < 2 {
		return nil, ErrSizeTooSmall
	}

	return &Dirichlet{alpha: data.NewConstantVector(size, alpha)}, nil
}

// Dim returns the number of dimensions of the sampled points.
func (d *Dirichlet) Dim() int {
	return len(d.alpha)
}

// Alpha returns a copy of the concentration parameters.
func (d *Dirichlet) Alpha() data.Vector {
	return d.alpha.Copy()
}

// Equal checks if samplers d and other have element-wise equal
// concentration parameters.
func (d *Dirichlet) Equal(other *Dirichlet) bool {
	return d.alpha.Equal(other.alpha)
}

// Sample samples a random point on the probability simplex: a vector
// with one element per concentration parameter, each element in the
// interval [0, 1], and all elements summing to 1 up to floating-point
// rounding. The source src provides the randomness and must not be
// shared with another goroutine for the duration of the call.
//
// Sampling cannot fail: the constructors only admit concentration
// parameters that are valid shapes for the underlying gamma and beta
// samplers.
func (d *Dirichlet) Sample(src rand.Source) data.Vector {
	if d.useStickBreaking() {
		return d.sampleStickBreaking(src)
	}

	return d.sampleGammaNorm(src)
}

// useStickBreaking reports whether every concentration parameter is
// small enough that sampling must go through the stick-breaking
// method.
func (d *Dirichlet) useStickBreaking() bool {
	for _, ai := range d.alpha {
		if ai > stickBreakingThreshold {
			return false
		}
	}

	return true
}

// sampleStickBreaking samples by sequentially splitting off a
// beta-distributed fraction of the still unassigned remainder of the
// unit interval. The i-th fraction is Beta(alpha[i], b[i]) distributed,
// where b[i] is the sum of the concentration parameters after index i,
// so the draws must happen left to right. The last element takes
// whatever remains, which keeps the sum at exactly 1 up to the rounding
// of the multiplications.
func (d *Dirichlet) sampleStickBreaking(src rand.Source) data.Vector {
	n := len(d.alpha)
	samples := make(data.Vector, n)
	sums := d.alpha.SuffixSums()

	remaining := 1.0
	for i := 0; i < n-1; i++ {
		// the constructor cannot fail: alpha[i] > 0 and sums[i], as a
		// sum of positive parameters, is positive too
		beta, _ := NewBeta(d.alpha[i], sums[i], src)
		frac, _ := beta.Sample()
		samples[i] = remaining * frac
		remaining *= 1 - frac
	}
	samples[n-1] = remaining

	return samples
}

// sampleGammaNorm samples with the defining construction of a
// Dirichlet variate: n independent Gamma(alpha[i], 1) variates divided
// by their sum.
func (d *Dirichlet) sampleGammaNorm(src rand.Source) data.Vector {
	samples := make(data.Vector, len(d.alpha))

	sum := 0.0
	for i, ai := range d.alpha {
		gamma, _ := NewGamma(ai, 1, src)
		samples[i], _ = gamma.Sample()
		sum += samples[i]
	}

	// multiply through by the reciprocal so every element is rounded
	// the same way
	inv := 1 / sum
	for i := range samples {
		samples[i] *= inv
	}

	return samples
}

type dirichletJSON struct {
	Alpha data.Vector `json:"alpha"`
}

// MarshalJSON serializes the concentration parameters.
func (d *Dirichlet) MarshalJSON() ([]byte, error) {
	return json.Marshal(dirichletJSON{Alpha: d.alpha})
}

// UnmarshalJSON deserializes concentration parameters serialized with
// MarshalJSON. The parameters pass through the same validation as in
// NewDirichlet.
func (d *Dirichlet) UnmarshalJSON(b []byte) error {
	var dj dirichletJSON
	if err := json.Unmarshal(b, &dj); err != nil {
		return err
	}

	dec, err := NewDirichlet(dj.Alpha)
	if err != nil {
		return err
	}
	d.alpha = dec.alpha

	return nil
}
