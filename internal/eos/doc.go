// Package eos evaluates equation-of-state closure models over particle arrays.
//
// A closure model maps density and specific internal energy to pressure and
// sound speed:
//
//   - [LinearGas]: p = max((γ−1)ρe, pcutoff), c = γp/ρ
//   - [StiffenedGas]: p = max((γ−1)ρe − γp∞, pcutoff), c = γ(p+p∞)/ρ
//
// The variants form a closed set. [Dispatch] resolves a [Model] to its
// concrete kernel with one type switch, so the per-particle loop runs
// without interface calls. A [Collection] evaluates several models in
// order against the same [Fields]:
//
//	models := eos.Collection{
//	    eos.NewLinearGas(0, 1.4, 1e-6),
//	    eos.NewStiffenedGas(1, 1.4, 1e-6, 0.0),
//	}
//	err := models.Evaluate(rt, fields)
//
// Every model overwrites the same pressure and sound-speed arrays; only the
// last model's values remain afterwards.
//
// # Adding a variant
//
// Add a Kind constant and name, a value type with a PressureSoS method, a
// case in Dispatch and an entry in the builder table. TestEveryKindDispatches
// fails until all four exist.
//
// Inputs with ρ ≤ 0 are not checked and produce Inf or NaN.
package eos
