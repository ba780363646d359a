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

// Normal samples random values from the Normal (Gaussian) probability
// distribution with the given mean and standard deviation sigma.
// Sampling is delegated to gonum's normal variate generator.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of the Normal sampler. It accepts the
// mean and standard deviation of the distribution and the source of
// randomness to draw from. Sigma must be a positive number, otherwise
// an error is returned.
func NewNormal(mean, sigma float64, src rand.Source) (*Normal, error) {
	if !(sigma > 0) {
		return nil, errors.Wrap(ErrValueNotPositive, "sigma")
	}

	return &Normal{
		dist: distuv.Normal{
			Mu:    mean,
			Sigma: sigma,
			Src:   src,
		},
	}, nil
}

// Sample samples a random normal variate.
func (n *Normal) Sample() (float64, error) {
	return n.dist.Rand(), nil
}
