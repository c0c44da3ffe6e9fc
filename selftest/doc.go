// Package selftest ships the fixed verification suite for the quadrature
// rules: every rule against the polynomial catalog on [1,3], with
// closed-form expectations and a documented expected miss for Simpson 3/8
// at a stride-unfriendly subdivision count.
//
// The suite exists so the same acceptance table can back both `quadra
// selftest` and the package tests. Run is deterministic: identical input
// produces identical Results, in input order.
package selftest
