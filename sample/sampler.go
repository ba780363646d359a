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
	"github.com/fentec-project/variate/data"
)

// Sampler is the interface implemented by univariate samplers,
// producing one random float64 value per call.
type Sampler interface {
	Sample() (float64, error)
}

// NewRandomVector returns a new data.Vector instance
// with n random elements drawn by the provided Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(n int, sampler Sampler) (data.Vector, error) {
	vec := make(data.Vector, n)
	var err error

	for i := 0; i < n; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return vec, nil
}
