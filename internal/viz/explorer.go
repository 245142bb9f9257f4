package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sphiros/internal/analysis"
	"github.com/san-kum/sphiros/internal/compute"
	"github.com/san-kum/sphiros/internal/eos"
)

const sweepPoints = 120

type Explorer struct {
	rt     *compute.Runtime
	models eos.Collection
	cursor int
	rho, e float64
	step   float64
	width  int

	// p and c per model at (rho, e)
	p, c  []float64
	curve []float64
}

func NewExplorer(rt *compute.Runtime, models eos.Collection, rho, e float64) *Explorer {
	x := &Explorer{
		rt:     rt,
		models: models,
		rho:    rho,
		e:      e,
		step:   0.1,
		width:  80,
	}
	x.recompute()
	return x
}

func (x *Explorer) Init() tea.Cmd { return nil }

func (x *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return x.handleKey(msg)
	case tea.WindowSizeMsg:
		x.width = msg.Width
	}
	return x, nil
}

func (x *Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return x, tea.Quit
	case "up", "k":
		if x.cursor > 0 {
			x.cursor--
		}
	case "down", "j":
		if x.cursor < len(x.models)-1 {
			x.cursor++
		}
	case "left", "h":
		x.e -= x.step
	case "right", "l":
		x.e += x.step
	case "-", "_":
		// density stays positive
		x.rho = math.Max(x.rho-x.step, x.step/10)
	case "+", "=":
		x.rho += x.step
	case "[":
		x.step /= 10
	case "]":
		x.step *= 10
	default:
		return x, nil
	}
	x.recompute()
	return x, nil
}

// recompute evaluates every model at the current state through the
// dispatcher, then sweeps the selected model around it.
func (x *Explorer) recompute() {
	n := len(x.models)
	x.p = make([]float64, n)
	x.c = make([]float64, n)

	f := eos.NewFields(1)
	f.Rho[0], f.E[0] = x.rho, x.e
	i := 0
	_ = x.models.EvaluateEach(x.rt, f, func(_ eos.Model, f eos.Fields) {
		x.p[i], x.c[i] = f.P[0], f.C[0]
		i++
	})

	x.curve = nil
	if x.cursor < n {
		span := math.Max(math.Abs(x.e), 1)
		curve, err := analysis.Sweep(x.rt, x.models[x.cursor], x.rho, x.e-span, x.e+span, sweepPoints)
		if err == nil {
			x.curve = curve.P
		}
	}
}

func (x *Explorer) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("sphiros · closure explorer"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
		MetricLabel.Render("ρ"), MetricValue.Render(fmt.Sprintf("%.4g", x.rho)),
		MetricLabel.Render("e"), MetricValue.Render(fmt.Sprintf("%.4g", x.e)),
		MetricLabel.Render("step"), MetricValue.Render(fmt.Sprintf("%.3g", x.step)),
	))

	for i, m := range x.models {
		line := fmt.Sprintf("%-48s p=%-12.6g c=%-12.6g", eos.Describe(m), x.p[i], x.c[i])
		if x.p[i] <= m.PCutoff() {
			line += Warning.Render(" floor")
		}
		if i == x.cursor {
			b.WriteString(Selected.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	width := x.width - 8
	if width < 20 {
		width = 20
	}
	b.WriteString("\n")
	b.WriteString(Separator(width))
	b.WriteString("\n")
	b.WriteString(MetricLabel.Render("p(e) around current state") + "\n")
	b.WriteString(SparklineChart(x.curve, width))
	b.WriteString("\n\n")

	if len(x.models) > 1 {
		last := x.models[len(x.models)-1]
		b.WriteString(Subtle.Render(fmt.Sprintf("a full evaluation keeps only %s#%d's output in p and c", last.Kind(), last.ID())))
		b.WriteString("\n")
	}
	b.WriteString(KeyHint.Render("↑↓ model  ←→ e  -/+ ρ  [/] step  q quit"))

	return Panel.Render(b.String())
}

// Run starts the explorer on the terminal.
func Run(rt *compute.Runtime, models eos.Collection, rho, e float64) error {
	p := tea.NewProgram(NewExplorer(rt, models, rho, e))
	_, err := p.Run()
	return err
}
