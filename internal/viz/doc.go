// Package viz provides a terminal explorer for closure models.
//
// The explorer is a Bubble Tea program listing every model of a
// collection with its pressure and sound speed at an adjustable state
// (ρ, e), plus a sparkline of p(e) for the selected model.
//
// # Key Bindings
//
//	↑/↓ k/j - Select model
//	←/→ h/l - Decrease/increase e
//	-/+     - Decrease/increase ρ
//	[/]     - Shrink/grow the step size
//	q       - Quit
package viz
