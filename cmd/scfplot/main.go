//go:build chart

// Command scfplot renders an SCF convergence-history chart (||dP|| and
// total energy per iteration) from a JSON molecule/configuration file, the
// same input rhfrun takes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"hartreefock/internal/sto3g"
	"hartreefock/rhf"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type atomInput struct {
	Symbol string  `json:"symbol"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

type runInput struct {
	Atoms         []atomInput `json:"atoms"`
	Electrons     int         `json:"electrons"`
	Guess         string      `json:"guess"`
	Tolerance     float64     `json:"tolerance"`
	MaxIterations int         `json:"max_iterations"`
	HuckelConstant float64    `json:"huckel_constant"`
}

func loadAndRun(path string) (*rhf.Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var input runInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	specs := make([]sto3g.AtomSpec, len(input.Atoms))
	for i, a := range input.Atoms {
		specs[i] = sto3g.AtomSpec{Symbol: a.Symbol, Position: rhf.Vec3{X: a.X, Y: a.Y, Z: a.Z}}
	}
	atoms, basis, err := sto3g.Build(specs)
	if err != nil {
		return nil, fmt.Errorf("build basis: %w", err)
	}

	guess := rhf.ZeroGuess
	switch input.Guess {
	case "", "zero":
	case "core_hamiltonian":
		guess = rhf.CoreHamiltonianGuess
	case "extended_huckel":
		guess = rhf.ExtendedHuckelGuess
	default:
		return nil, fmt.Errorf("unrecognized guess strategy %q", input.Guess)
	}

	cfg := rhf.SCFConfig{Guess: guess, Tolerance: input.Tolerance, MaxIterations: input.MaxIterations, HuckelConstant: input.HuckelConstant}
	return rhf.RunSCF(basis, atoms, input.Electrons, cfg)
}

func convergenceChart(result *rhf.Result) *charts.Line {
	iterations := make([]string, len(result.Iterations))
	deltaP := make([]opts.LineData, len(result.Iterations))
	totalE := make([]opts.LineData, len(result.Iterations))
	for i, rec := range result.Iterations {
		iterations[i] = fmt.Sprintf("%d", rec.Index)
		deltaP[i] = opts.LineData{Value: rec.DeltaP}
		totalE[i] = opts.LineData{Value: rec.TotalE}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "SCF convergence"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
	)
	line.SetXAxis(iterations).
		AddSeries("||dP||", deltaP).
		AddSeries("total energy (Hartree)", totalE)
	return line
}

func main() {
	out := flag.String("out", "scf_convergence.html", "output HTML file")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: scfplot -out=chart.html <config.json>")
	}

	result, err := loadAndRun(flag.Arg(0))
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(convergenceChart(result))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		log.Fatalf("render: %v", err)
	}
}
