// SPDX-License-Identifier: MIT

// Package plan describes a measurement campaign as data and evaluates it
// through package uncertainty.
//
// A plan lists raw measurements (sample files or inline samples plus the
// instrument's uncertainty), quantities known from elsewhere, and derived
// quantities computed from earlier entries:
//
//	measurements:
//	  - {name: a, dataset: a.txt, device_uncertainty: 0.01}
//	  - {name: h, dataset: h1.txt.gz, device_uncertainty: 0.002}
//	  - {name: d, samples: [0.0311, 0.0312, 0.0309], device_uncertainty: 0.01}
//	  - {name: t10, dataset: x10h1.txt, device_uncertainty: 0.51}
//	derived:
//	  - {name: l, expr: "a - h - d", args: [a, h, d]}
//	  - {name: t, expr: "t10 / 10", args: [t10]}
//	  - {name: g, expr: "4 * PI * PI * l / (t * t)", args: [l, t]}
//
// YAML (.yaml, .yml) and TOML (.toml) files are accepted. Relative dataset
// paths resolve against the plan file's directory.
//
// Derived entries default to op "expr": Expr is compiled by package expr
// with Args as its parameters and the variance is propagated to first
// order. Op "mean" and "weighted_mean" average the quantities named in
// Args instead.
//
// Entries are evaluated in file order (measurements, then quantities,
// then derived), so a name may only refer to one defined before it.
package plan
