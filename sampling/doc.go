// SPDX-License-Identifier: MIT

// Package sampling generates the evenly spaced sample sequences that drive
// every diffraction model: phases for the N-slit array and sin(θ) values
// for the angle-domain models.
//
// Two constructors mirror the familiar MATLAB forms:
//
//	Linspace(a, b, n)     // n points, both ends included
//	Sequence(a, step, b)  // a:step:b, the end included despite roundoff
//
// Sequence keeps an end point that roundoff puts a hair short: 0:0.1:0.3
// has 4 values even though 0.3/0.1 is computed as 2.9999999999999996.
//
// Both functions return nil instead of panicking when the caller breaks
// their preconditions (n < 2; step ≤ 0 or b < a).
//
// Complexity: O(n) time and memory for every constructor.
package sampling
