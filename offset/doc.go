// SPDX-License-Identifier: MIT

// Package offset computes per-qubit anneal offsets.
//
// What
//
//   - Range: a closed [Min, Max] anneal-offset interval. Intersect narrows
//     per-qubit ranges to the interval every qubit of an embedding supports.
//   - Policy: maps logical biases h and a feasible Range to one offset per
//     logical variable. Built-ins are selected by tag through ParsePolicy:
//
//     constant         all zero
//     linear           |h|/max|h|
//     signedlinear     (1 + h/max|h|)/2
//     negsignedlinear  (1 − h/max|h|)/2
//     expr:<formula>   user formula evaluated per variable
//
//     Normalized values hnorm map to hnorm·(Max−Min)·0.9 + Min·1.1.
//   - Expand: writes each logical offset onto every physical qubit of that
//     variable's chain, leaving other qubits at zero.
//
// Zero biases
//
//	When every h_i is zero, h/max|h| is taken as 0 for all variables, so
//	linear yields Min·1.1 and both signed variants yield 0.45·(Max−Min)+Min·1.1.
//
// Range containment
//
//	The linear map stays inside [Min, Max] whenever 0 ≤ 2·Min ≤ Max. Offsets
//	are not clamped; hardware ranges with negative Min may produce values
//	below Min·1.1's nominal floor, exactly as the formula prescribes.
package offset
