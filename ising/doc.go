// SPDX-License-Identifier: MIT

// Package ising converts QUBO problems into Ising models.
//
// With spins s = 2x − 1 ∈ {−1,+1}, every QUBO energy xᵀQx can be written as
//
//	E(s) = Σ_{i<j} J_ij·s_i·s_j + Σ_i h_i·s_i + G
//
// where, for q = diag(Q), QD = Q with a cleared diagonal and QQ = QD + QDᵀ:
//
//	J = strict upper triangle of QQ / 4
//	h = q/2 + rowsum(QQ)/4
//	G = sum(QD)/4 + sum(q)/2
//
// The conversion is exact: Energy(Spins(x)) == QUBO energy for every x.
// Example: Q = [[1,1],[1,0]] gives J_01 = 0.5, h = [1, 0.5], G = 1.
package ising
