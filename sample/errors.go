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

import "github.com/pkg/errors"

// Errors returned by distribution constructors. Construction is the
// only fallible step: once a distribution instance exists, sampling
// from it cannot fail.
var (
	// ErrAlphaTooShort signals that fewer than 2 concentration
	// parameters were supplied.
	ErrAlphaTooShort = errors.New("need at least 2 concentration parameters")
	// ErrValueNotPositive signals a distribution parameter that is
	// zero, negative, or NaN.
	ErrValueNotPositive = errors.New("parameter is not a positive number")
	// ErrSizeTooSmall signals a requested dimension smaller than 2.
	ErrSizeTooSmall = errors.New("requested size should be at least 2")
)
