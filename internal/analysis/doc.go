// Package analysis samples closure models over energy grids.
//
//   - [Sweep]: pressure and sound speed along e at fixed density
//   - [Curve.Monotone]: whether pressure is non-decreasing along the sweep
//   - [Curve.FloorStart]: where the pressure floor stops binding
//
// Sweeps run through the same dispatcher and executor as full evaluations.
package analysis
