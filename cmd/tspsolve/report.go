package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/tourbound/tsp"
)

// summary aggregates repeated runs. Cost figures cover only runs that found a tour.
type summary struct {
	Algorithm tsp.Algorithm
	Runs      int
	Found     int
	Optimal   int

	CostMin, CostMax    float64
	CostMean, CostMed   float64
	CostStdDev          float64
	SecondsMean         float64
	SecondsP90          float64
	TotalStatesMean     float64
	MaxFrontierSizeMean float64
}

func formatCost(c float64) string {
	if math.IsInf(c, 0) || math.IsNaN(c) {
		return "no tour"
	}

	return humanize.Commaf(c)
}

func writeResult(w io.Writer, res tsp.Result) {
	fmt.Fprintf(w, "algorithm: %s\n", res.Algorithm)
	fmt.Fprintf(w, "cost:      %s\n", formatCost(res.Cost))
	fmt.Fprintf(w, "time:      %s\n", res.Time.Round(time.Microsecond))
	fmt.Fprintf(w, "count:     %s\n", humanize.Comma(int64(res.Count)))
	if res.Found() {
		fmt.Fprintf(w, "route:     %v\n", res.Route)
	}
	if res.TotalStates != nil {
		fmt.Fprintf(w, "states:    %s created, %s pruned, max frontier %s\n",
			humanize.Comma(int64(*res.TotalStates)),
			humanize.Comma(int64(*res.PrunedStates)),
			humanize.Comma(int64(*res.MaxFrontierSize)),
		)
		fmt.Fprintf(w, "optimal:   %v\n", res.Optimal)
	}
}

func summarize(results []tsp.Result) summary {
	s := summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	s.Algorithm = results[0].Algorithm

	var costs, secs, totals, fronts stats.Float64Data
	for _, r := range results {
		secs = append(secs, r.Seconds())
		if r.Optimal {
			s.Optimal++
		}
		if r.TotalStates != nil {
			totals = append(totals, float64(*r.TotalStates))
			fronts = append(fronts, float64(*r.MaxFrontierSize))
		}
		if r.Found() {
			s.Found++
			costs = append(costs, r.Cost)
		}
	}

	s.SecondsMean, _ = stats.Mean(secs)
	s.SecondsP90, _ = stats.Percentile(secs, 90)
	if len(totals) > 0 {
		s.TotalStatesMean, _ = stats.Mean(totals)
		s.MaxFrontierSizeMean, _ = stats.Mean(fronts)
	}
	if len(costs) == 0 {
		s.CostMin, s.CostMax = math.Inf(1), math.Inf(1)
		s.CostMean, s.CostMed = math.Inf(1), math.Inf(1)

		return s
	}
	s.CostMin, _ = stats.Min(costs)
	s.CostMax, _ = stats.Max(costs)
	s.CostMean, _ = stats.Mean(costs)
	s.CostMed, _ = stats.Median(costs)
	s.CostStdDev, _ = stats.StandardDeviation(costs)

	return s
}

func writeSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "algorithm: %s\n", s.Algorithm)
	fmt.Fprintf(w, "runs:      %d (%d found a tour, %d proved optimal)\n", s.Runs, s.Found, s.Optimal)
	if s.Found > 0 {
		fmt.Fprintf(w, "cost:      min %s, median %s, mean %.2f, max %s, stddev %.2f\n",
			formatCost(s.CostMin), formatCost(s.CostMed), s.CostMean, formatCost(s.CostMax), s.CostStdDev)
	} else {
		fmt.Fprintf(w, "cost:      %s\n", formatCost(s.CostMin))
	}
	fmt.Fprintf(w, "time:      mean %.4fs, p90 %.4fs\n", s.SecondsMean, s.SecondsP90)
	if s.TotalStatesMean > 0 {
		fmt.Fprintf(w, "states:    mean %s created, mean max frontier %s\n",
			humanize.Commaf(math.Round(s.TotalStatesMean)),
			humanize.Commaf(math.Round(s.MaxFrontierSizeMean)))
	}
}
