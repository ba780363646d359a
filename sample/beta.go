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
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	ln4 = 1.3862943611198906
	ln5 = 1.6094379124341003
)

// Beta samples random values from the Beta probability distribution
// with shape parameters a and b. The implementation is based on the
// rejection algorithms BB and BC from the paper: "Generating beta
// variates with nonintegral shape parameters" by R. C. H. Cheng
// (https://doi.org/10.1145/359460.359482).
//
// Unlike generating a beta variate as the normalized ratio of two
// gamma variates, Cheng's algorithms remain numerically stable for
// arbitrarily small shape parameters, where the gamma variates would
// underflow to zero.
type Beta struct {
	// shapes ordered as the chosen algorithm expects: the smaller
	// one first for BB, the larger one first for BC
	a, b    float64
	swapped bool
	useBB   bool
	alpha   float64
	beta    float64
	gamma   float64 // BB only
	kappa1  float64 // BC only
	kappa2  float64 // BC only
	rnd     *rand.Rand
}

// NewBeta returns an instance of the Beta sampler. It accepts the two
// shape parameters of the distribution and the source of randomness
// to draw from. Both shapes must be positive numbers, otherwise an
// error is returned.
func NewBeta(a, b float64, src rand.Source) (*Beta, error) {
	if !(a > 0) {
		return nil, errors.Wrap(ErrValueNotPositive, "shape a")
	}
	if !(b > 0) {
		return nil, errors.Wrap(ErrValueNotPositive, "shape b")
	}

	be := &Beta{rnd: rand.New(src)}
	x, y, swapped := a, b, false
	if a > b {
		x, y, swapped = b, a, true
	}

	if x > 1 {
		// algorithm BB, x is the smaller shape
		be.a, be.b, be.swapped = x, y, swapped
		be.useBB = true
		be.alpha = x + y
		be.beta = math.Sqrt((be.alpha - 2) / (2*x*y - be.alpha))
		be.gamma = x + 1/be.beta
	} else {
		// algorithm BC, x is the larger shape
		x, y, swapped = y, x, !swapped
		be.a, be.b, be.swapped = x, y, swapped
		be.alpha = x + y
		be.beta = 1 / y
		delta := 1 + x - y
		be.kappa1 = delta * (0.0138889 + 0.0416667*y) / (x*be.beta - 0.777778)
		be.kappa2 = 0.25 + (0.5+0.25/delta)*y
	}

	return be, nil
}

// Sample samples a random beta variate.
func (be *Beta) Sample() (float64, error) {
	var w float64
	if be.useBB {
		for {
			u1 := be.open01()
			u2 := be.open01()
			v := be.beta * math.Log(u1/(1-u1))
			w = be.a * math.Exp(v)
			z := u1 * u1 * u2
			r := be.gamma*v - ln4
			s := be.a + r - w
			if s+1+ln5 >= 5*z {
				break
			}
			t := math.Log(z)
			if s >= t {
				break
			}
			if r+be.alpha*math.Log(be.alpha/(be.b+w)) >= t {
				break
			}
		}
	} else {
		for {
			u1 := be.open01()
			u2 := be.open01()
			var z float64
			if u1 < 0.5 {
				y := u1 * u2
				z = u1 * y
				if 0.25*u2+z-y >= be.kappa1 {
					continue
				}
			} else {
				z = u1 * u1 * u2
				if z <= 0.25 {
					v := be.beta * math.Log(u1/(1-u1))
					w = be.a * math.Exp(v)
					break
				}
				if z >= be.kappa2 {
					continue
				}
			}
			v := be.beta * math.Log(u1/(1-u1))
			w = be.a * math.Exp(v)
			if be.alpha*(math.Log(be.alpha/(be.b+w))+v)-ln4 >= math.Log(z) {
				break
			}
		}
	}

	// w can overflow to +Inf for extreme shapes; the limit of the
	// delivered value is then 1 (or 0 for swapped parameters)
	if be.swapped {
		if math.IsInf(w, 1) {
			return 0, nil
		}
		return be.b / (be.b + w), nil
	}
	if math.IsInf(w, 1) {
		return 1, nil
	}
	return w / (be.b + w), nil
}

// open01 draws a uniform value from the open interval (0, 1).
func (be *Beta) open01() float64 {
	for {
		if u := be.rnd.Float64(); u > 0 {
			return u
		}
	}
}
