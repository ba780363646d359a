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

package sample_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/fentec-project/variate/data"
	"github.com/fentec-project/variate/sample"
)

func TestDirichlet_New(t *testing.T) {
	var tests = []struct {
		name     string
		alpha    []float64
		expected error
	}{
		{
			name:     "valid parameters",
			alpha:    []float64{1, 2, 3},
			expected: nil,
		},
		{
			name:     "empty vector",
			alpha:    []float64{},
			expected: sample.ErrAlphaTooShort,
		},
		{
			name:     "single dimension",
			alpha:    []float64{1.5},
			expected: sample.ErrAlphaTooShort,
		},
		{
			name:     "negative parameter",
			alpha:    []float64{1, -1},
			expected: sample.ErrValueNotPositive,
		},
		{
			name:     "zero parameter",
			alpha:    []float64{0, 1},
			expected: sample.ErrValueNotPositive,
		},
		{
			name:     "NaN parameter",
			alpha:    []float64{1, math.NaN()},
			expected: sample.ErrValueNotPositive,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := sample.NewDirichlet(test.alpha)
			if test.expected == nil {
				require.NoError(t, err)
				assert.Equal(t, len(test.alpha), d.Dim())
				return
			}
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestDirichlet_NewSymmetric(t *testing.T) {
	d, err := sample.NewDirichletSymmetric(0.5, 3)
	require.NoError(t, err)
	assert.True(t, d.Alpha().Equal(data.Vector{0.5, 0.5, 0.5}))

	_, err = sample.NewDirichletSymmetric(0.5, 1)
	assert.ErrorIs(t, err, sample.ErrSizeTooSmall)
	_, err = sample.NewDirichletSymmetric(0, 2)
	assert.ErrorIs(t, err, sample.ErrValueNotPositive)
	_, err = sample.NewDirichletSymmetric(math.NaN(), 2)
	assert.ErrorIs(t, err, sample.ErrValueNotPositive)
}

func TestDirichlet_Equal(t *testing.T) {
	d1, err := sample.NewDirichlet([]float64{1, 2})
	require.NoError(t, err)
	d2, err := sample.NewDirichlet([]float64{1, 2})
	require.NoError(t, err)
	d3, err := sample.NewDirichlet([]float64{1, 2.5})
	require.NoError(t, err)
	d4, err := sample.NewDirichletSymmetric(1, 2)
	require.NoError(t, err)

	assert.True(t, d1.Equal(d2))
	assert.False(t, d1.Equal(d3))
	assert.False(t, d1.Equal(d4))
}

func TestDirichlet_Alpha(t *testing.T) {
	alpha := []float64{1, 2, 3}
	d, err := sample.NewDirichlet(alpha)
	require.NoError(t, err)

	// neither the input slice nor the returned copy alias the
	// internal state
	alpha[0] = 42
	a := d.Alpha()
	a[1] = 42
	assert.True(t, d.Alpha().Equal(data.Vector{1, 2, 3}))
}

func TestDirichlet_Sample(t *testing.T) {
	d, err := sample.NewDirichlet([]float64{1, 2, 3})
	require.NoError(t, err)
	src := sample.NewSeededSource(221)

	for i := 0; i < 100; i++ {
		v := d.Sample(src)
		require.NoError(t, v.CheckSimplex(1e-9))
		for _, vi := range v {
			assert.Greater(t, vi, 0.0)
			assert.Less(t, vi, 1.0)
		}
	}
}

// checkDirichletMeans checks that the empirical means of the
// components of n samples agree with the expected means
// alpha[i] / sum(alpha) within the absolute tolerance tol. The check
// also fails if any sample contains NaN or leaves the simplex.
func checkDirichletMeans(t *testing.T, alpha []float64, n int, tol float64, src rand.Source) {
	t.Helper()

	d, err := sample.NewDirichlet(alpha)
	require.NoError(t, err)

	sums := make(data.Vector, len(alpha))
	for i := 0; i < n; i++ {
		v := d.Sample(src)
		require.NoError(t, v.CheckSimplex(1e-9))
		sums, err = sums.Add(v)
		require.NoError(t, err)
	}

	sampleMean := sums.MulScalar(1 / float64(n))
	expectedMean := data.NewVector(alpha).MulScalar(1 / data.NewVector(alpha).Sum())
	for i := range sampleMean {
		assert.InDelta(t, expectedMean[i], sampleMean[i], tol)
	}
}

func TestDirichlet_Means(t *testing.T) {
	var tests = []struct {
		name  string
		alpha []float64
	}{
		{
			name:  "two small",
			alpha: []float64{0.5, 0.25},
		},
		{
			name:  "two large",
			alpha: []float64{123, 75},
		},
		{
			name:  "four mixed",
			alpha: []float64{2, 2.5, 5, 7},
		},
		{
			name:  "eight mixed",
			alpha: []float64{0.1, 8, 1, 2, 2, 0.85, 0.05, 12.5},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			checkDirichletMeans(t, test.alpha, 20000, 2e-2, sample.NewSeededSource(1317624576693539401))
		})
	}
}

func TestDirichlet_MeansRelative(t *testing.T) {
	alpha := []float64{1, 2, 3}
	n := 20000
	d, err := sample.NewDirichlet(alpha)
	require.NoError(t, err)
	src := sample.NewSeededSource(42)

	sums := make(data.Vector, len(alpha))
	for i := 0; i < n; i++ {
		sums, err = sums.Add(d.Sample(src))
		require.NoError(t, err)
	}

	sampleMean := sums.MulScalar(1 / float64(n))
	assert.True(t, sampleMean.EqualApprox(data.Vector{1.0 / 6, 2.0 / 6, 3.0 / 6}, 2e-2),
		"the empirical means should converge to alpha[i]/sum(alpha)")
}

func TestDirichlet_MeansSmallAlpha(t *testing.T) {
	// all parameters below the method switchover
	checkDirichletMeans(t, []float64{0.05, 0.025, 0.075, 0.05}, 150000, 1e-3,
		sample.NewSeededSource(1317624576693539401))
}

func TestDirichlet_MeansVerySmallAlpha(t *testing.T) {
	// Sampled through gamma variates, roughly 10% of these samples
	// would contain NaN; checkDirichletMeans rejects every NaN via
	// the simplex check.
	checkDirichletMeans(t, []float64{0.001, 0.001, 0.001}, 10000, 1e-2,
		sample.NewSeededSource(1317624576693539401))
}

func TestDirichlet_Determinism(t *testing.T) {
	var tests = []struct {
		name  string
		alpha []float64
	}{
		{
			name:  "gamma normalization method",
			alpha: []float64{1, 2, 3},
		},
		{
			name:  "stick breaking method",
			alpha: []float64{0.05, 0.1, 0.02},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := sample.NewDirichlet(test.alpha)
			require.NoError(t, err)

			src1 := sample.NewSeededSource(7)
			src2 := sample.NewSeededSource(7)
			for i := 0; i < 10; i++ {
				assert.True(t, d.Sample(src1).Equal(d.Sample(src2)),
					"equal seeds should give bit-identical samples")
			}

			mt1 := sample.NewMT19937Source(7)
			mt2 := sample.NewMT19937Source(7)
			for i := 0; i < 10; i++ {
				assert.True(t, d.Sample(mt1).Equal(d.Sample(mt2)))
			}
		})
	}
}

func TestDirichlet_JSON(t *testing.T) {
	d, err := sample.NewDirichlet([]float64{0.5, 1.5, 3})
	require.NoError(t, err)

	ser, err := json.Marshal(d)
	require.NoError(t, err)

	var dec sample.Dirichlet
	require.NoError(t, json.Unmarshal(ser, &dec))
	assert.True(t, d.Equal(&dec))

	err = json.Unmarshal([]byte(`{"alpha": [1, -2]}`), &dec)
	assert.ErrorIs(t, err, sample.ErrValueNotPositive,
		"deserialization should validate the parameters")
}
