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
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gamma samples random values from the Gamma probability distribution
// with the given shape and scale parameters. Sampling is delegated to
// gonum's gamma variate generator.
type Gamma struct {
	dist distuv.Gamma
}

// NewGamma returns an instance of the Gamma sampler. It accepts the
// shape and scale parameters of the distribution and the source of
// randomness to draw from. Shape and scale must be positive numbers,
// otherwise an error is returned.
func NewGamma(shape, scale float64, src rand.Source) (*Gamma, error) {
	if !(shape > 0) {
		return nil, errors.Wrap(ErrValueNotPositive, "shape")
	}
	if !(scale > 0) {
		return nil, errors.Wrap(ErrValueNotPositive, "scale")
	}

	// gonum parameterizes the gamma distribution with a rate,
	// the inverse of the scale
	return &Gamma{
		dist: distuv.Gamma{
			Alpha: shape,
			Beta:  1 / scale,
			Src:   src,
		},
	}, nil
}

// Sample samples a random gamma variate.
func (g *Gamma) Sample() (float64, error) {
	return g.dist.Rand(), nil
}
