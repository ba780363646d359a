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

package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Sum returns the sum of all elements of vector v.
func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.New("vectors should be of same length")
	}

	sum := make(Vector, len(v))
	for i, c := range v {
		sum[i] = c + other[i]
	}

	return sum, nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.New("vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// SuffixSums returns the reverse-exclusive cumulative sums of vector v:
// the i-th element of the result is the sum of all elements of v with
// index strictly greater than i. The last element is therefore 0.
func (v Vector) SuffixSums() Vector {
	res := make(Vector, len(v))
	acc := 0.0
	for i := len(v) - 1; i >= 0; i-- {
		res[i] = acc
		acc += v[i]
	}

	return res
}

// Equal checks if vectors v and other hold exactly the same elements
// in the same order.
func (v Vector) Equal(other Vector) bool {
	return floats.Equal(v, other)
}

// EqualApprox checks if vectors v and other are element-wise equal
// within the given absolute or relative tolerance.
func (v Vector) EqualApprox(other Vector, tol float64) bool {
	return floats.EqualApprox(v, other, tol)
}

// CheckSimplex checks whether vector v is a point on the probability
// simplex: all elements must lie in the interval [0, 1] and the elements
// must sum to 1 within the given tolerance.
// It returns an error describing the first violated condition.
func (v Vector) CheckSimplex(tol float64) error {
	for i, vi := range v {
		if !(vi >= 0 && vi <= 1) {
			return errors.Errorf("element %d with value %v lies outside [0, 1]", i, vi)
		}
	}
	if s := v.Sum(); !scalar.EqualWithinAbsOrRel(s, 1, tol, tol) {
		return errors.Errorf("elements sum to %v instead of 1", s)
	}

	return nil
}
