// Command airnet runs flight-network analyses over a CSV dataset.
//
// Usage:
//
//	airnet -data flights.csv -mode route -origin "New York, NY" -dest "Los Angeles, CA" -date 2008-01-01
//	airnet -data flights.csv -mode mincut -source JFK -sink LAX
//	airnet -data flights.csv -mode communities
//	airnet -data flights.csv -mode centrality
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sandrokhizanishvili/airnet/centrality"
	"github.com/sandrokhizanishvili/airnet/community"
	"github.com/sandrokhizanishvili/airnet/flights"
	"github.com/sandrokhizanishvili/airnet/flow"
)

func main() {
	var (
		dataPath = flag.String("data", "", "path to the flights CSV (required)")
		mode     = flag.String("mode", "route", "analysis mode: route | mincut | communities | centrality")
		origin   = flag.String("origin", "", "origin city for -mode route")
		dest     = flag.String("dest", "", "destination city for -mode route")
		date     = flag.String("date", "", "YYYY-MM-DD date filter (empty = all dates)")
		source   = flag.String("source", "", "source airport for -mode mincut")
		sink     = flag.String("sink", "", "sink airport for -mode mincut")
		topN     = flag.Int("top", 10, "entries per ranking in -mode centrality")
	)
	flag.Parse()

	log := newLogger()
	defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	if *dataPath == "" {
		log.Fatal("missing -data flag")
	}

	f, err := os.Open(*dataPath)
	if err != nil {
		log.Fatal("open dataset", zap.Error(err))
	}
	recs, err := flights.LoadCSV(f)
	f.Close()
	if err != nil {
		log.Fatal("load dataset", zap.Error(err))
	}
	recs = flights.FilterByDate(recs, *date)
	log.Info("dataset loaded", zap.Int("records", len(recs)), zap.String("date", *date))

	switch *mode {
	case "route":
		err = runRoute(recs, *origin, *dest)
	case "mincut":
		err = runMinCut(log, recs, *source, *sink)
	case "communities":
		err = runCommunities(log, recs)
	case "centrality":
		err = runCentrality(recs, *topN)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal("analysis failed", zap.String("mode", *mode), zap.Error(err))
	}
}

// newLogger builds a console-encoded production logger writing to stderr,
// keeping stdout clean for tabular results.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "airnet: logger:", err)
		os.Exit(1)
	}
	return log
}

func runRoute(recs []flights.Record, origin, dest string) error {
	if origin == "" || dest == "" {
		return fmt.Errorf("route mode needs -origin and -dest")
	}
	rows, err := flights.BestRoutes(recs, origin, dest, "")
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No airports match the requested cities.")
		return nil
	}
	return flights.RenderRoutes(os.Stdout, rows)
}

func runMinCut(log *zap.Logger, recs []flights.Record, source, sink string) error {
	if source == "" || sink == "" {
		return fmt.Errorf("mincut mode needs -source and -sink")
	}
	g, err := flights.BuildGraph(recs, true)
	if err != nil {
		return err
	}
	res, err := flow.MinCut(context.Background(), g, source, sink)
	if err != nil {
		return err
	}
	log.Info("min cut computed",
		zap.Float64("max_flow", res.MaxFlow),
		zap.Int("cut_edges", len(res.Edges)))

	fmt.Printf("Max flow %s -> %s: %g\n", source, sink, res.MaxFlow)
	fmt.Println("Cut edges:")
	for _, e := range res.Edges {
		fmt.Printf("  %s -> %s (%g)\n", e.From, e.To, e.Weight)
	}
	fmt.Printf("Source side (%d airports): %v\n", len(res.SourceSide), res.SourceSide)
	return nil
}

func runCommunities(log *zap.Logger, recs []flights.Record) error {
	g, err := flights.BuildGraph(recs, false)
	if err != nil {
		return err
	}

	gn, err := community.GirvanNewman(context.Background(), g)
	if err != nil {
		return err
	}
	fmt.Printf("Girvan-Newman: %d communities after removing %d edge(s)\n",
		len(gn.Communities), len(gn.RemovedEdges))
	for i, c := range gn.Communities {
		fmt.Printf("  [%d] %v\n", i+1, c)
	}

	lp, err := community.LabelPropagation(g)
	if err != nil {
		return err
	}
	if !lp.Converged {
		log.Warn("label propagation hit the sweep cap", zap.Int("sweeps", lp.Sweeps))
	}
	fmt.Printf("Label propagation: %d communities in %d sweep(s)\n",
		len(lp.Communities), lp.Sweeps)
	for i, c := range lp.Communities {
		fmt.Printf("  [%d] %v\n", i+1, c)
	}
	return nil
}

func runCentrality(recs []flights.Record, topN int) error {
	dg, err := flights.BuildGraph(recs, true)
	if err != nil {
		return err
	}
	ug, err := flights.BuildGraph(recs, false)
	if err != nil {
		return err
	}

	closeness, err := centrality.Closeness(dg)
	if err != nil {
		return err
	}
	indeg, err := centrality.InDegree(dg)
	if err != nil {
		return err
	}
	betw, err := centrality.Betweenness(dg)
	if err != nil {
		return err
	}
	pr, err := centrality.PageRank(dg)
	if err != nil {
		return err
	}
	if !pr.Converged {
		fmt.Fprintf(os.Stderr, "airnet: pagerank stopped at the iteration cap (%d)\n", pr.Iterations)
	}
	ebc, err := centrality.EdgeBetweenness(ug)
	if err != nil {
		return err
	}

	printTop("Closeness", closeness, topN)
	printTop("In-degree", indeg, topN)
	printTop("Betweenness", betw, topN)
	printTop("PageRank", pr.Scores, topN)

	fmt.Printf("Top edges by betweenness:\n")
	type scored struct {
		key   centrality.EdgeKey
		score float64
	}
	edges := make([]scored, 0, len(ebc))
	for k, s := range ebc {
		edges = append(edges, scored{k, s})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].score != edges[j].score {
			return edges[i].score > edges[j].score
		}
		if edges[i].key.U != edges[j].key.U {
			return edges[i].key.U < edges[j].key.U
		}
		return edges[i].key.V < edges[j].key.V
	})
	for i, e := range edges {
		if i == topN {
			break
		}
		fmt.Printf("  %s -- %s: %.4f\n", e.key.U, e.key.V, e.score)
	}
	return nil
}

// printTop prints the topN highest-scoring vertices of one metric,
// breaking score ties by vertex ID.
func printTop(name string, scores map[string]float64, topN int) {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	fmt.Printf("%s:\n", name)
	for i, id := range ids {
		if i == topN {
			break
		}
		fmt.Printf("  %s: %.4f\n", id, scores[id])
	}
}
