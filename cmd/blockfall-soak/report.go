package main

import (
	"io"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/driver"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Games      int
	Tick       time.Duration
	Width      int
	Height     int
	Randomizer engine.Randomizer
	Seed       uint64

	// Results
	TotalTime time.Duration
	Results   []GameResult
	Score     Stats
	Lines     Stats
	Pieces    Stats
	Kinds     []KindCount
}

type GameResult struct {
	Index    int
	Summary  driver.Summary
	Ticks    driver.TickStats
	Finished bool // false when the run ended before game over
}

type KindCount struct {
	Kind  engine.Kind
	Count int
}

type Stats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = slices.Min(s.Samples)
	s.Max = slices.Max(s.Samples)
	for _, sample := range s.Samples {
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

// Finalize fills the aggregate fields from Results.
func (r *Report) Finalize() {
	counts := make(map[engine.Kind]int, engine.KindCount)
	for _, res := range r.Results {
		r.Score.Samples = append(r.Score.Samples, res.Summary.Score)
		r.Lines.Samples = append(r.Lines.Samples, res.Summary.Lines)
		r.Pieces.Samples = append(r.Pieces.Samples, res.Summary.Pieces)
		for kind, n := range res.Summary.Spawned {
			counts[kind] += n
		}
	}
	r.Score.Finalize()
	r.Lines.Finalize()
	r.Pieces.Finalize()

	r.Kinds = r.Kinds[:0]
	for _, kind := range engine.AllKinds {
		r.Kinds = append(r.Kinds, KindCount{Kind: kind, Count: counts[kind]})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Games:** {{.Games}}
- **Gravity Tick:** {{.Tick}}
- **Board:** {{.Width}}x{{.Height}}
- **Randomizer:** {{.Randomizer}}
- **Seed:** {{.Seed}}

## Totals
- **Wall Time:** {{.TotalTime}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
- **Lines:** avg {{printf "%.1f" .Lines.Avg}}, min {{.Lines.Min}}, max {{.Lines.Max}}
- **Pieces:** avg {{printf "%.1f" .Pieces.Avg}}, min {{.Pieces.Min}}, max {{.Pieces.Max}}

## Piece Distribution
{{range .Kinds}}- {{.Kind}}: {{.Count}}
{{end}}
## Games
| # | Finished | Score | Lines | Pieces | Singles | Doubles | Triples | Quads | Ticks | Avg Tick | Max Tick |
|---|---|---|---|---|---|---|---|---|---|---|---|
{{range .Results}}| {{.Index}} | {{.Finished}} | {{.Summary.Score}} | {{.Summary.Lines}} | {{.Summary.Pieces}} | {{index .Summary.Clears 1}} | {{index .Summary.Clears 2}} | {{index .Summary.Clears 3}} | {{index .Summary.Clears 4}} | {{.Ticks.Count}} | {{.Ticks.AvgDuration}} | {{.Ticks.MaxDuration}} |
{{end}}`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
