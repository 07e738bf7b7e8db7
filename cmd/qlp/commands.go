package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qlp/builder"
	"github.com/katalvlaran/qlp/config"
	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/embedding"
	"github.com/katalvlaran/qlp/hardware"
	"github.com/katalvlaran/qlp/ising"
	"github.com/katalvlaran/qlp/logging"
	"github.com/katalvlaran/qlp/pipeline"
	"github.com/katalvlaran/qlp/qubo"
	"github.com/katalvlaran/qlp/store"
)

const (
	topologyChimera  = "chimera"
	topologyComplete = "complete"

	finderNative = "native"
	finderPath   = "path"
)

type runFlags struct {
	graph     string
	random    string
	tag       string
	emb       string
	topology  string
	size      int
	chimeraMN int
	dead      []int
	finder    string
	maxPath   int
	trace     bool
	metrics   bool
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "qlp",
		Short:         "QUBO preparation, embedding and anneal-offset runs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (QLP_* variables override it)")

	root.AddCommand(newRunCmd(&configPath), newIsingCmd())

	return root
}

func newRunCmd(configPath *string) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve minimum dominating set for a graph on the simulator",
		Long: `run reads an edge list (or samples a G(n,p) graph), builds the
dominating-set QUBO, selects an embedding with a wide enough anneal-offset
range, samples it on the in-process simulator and stores graph, experiment
and data records.

Embeddings come from --embedding when given, else from the finder: "path"
grows chains along shortest free paths, "native" maps variable i to qubit i.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, *configPath, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.graph, "graph", "", "edge list file, one \"u v\" pair per line")
	fl.StringVar(&f.random, "random", "", "sample a random problem graph \"n,p\" seeded by the config seed")
	fl.StringVar(&f.tag, "tag", "", "graph tag stored with the records (default: file name or G(n,p))")
	fl.StringVar(&f.emb, "embedding", "", "JSON embedding {\"variable\": [qubits...]}")
	fl.StringVar(&f.topology, "topology", topologyComplete, "simulator topology: chimera|complete")
	fl.IntVar(&f.size, "size", 0, "complete topology size (default: QUBO size)")
	fl.IntVar(&f.chimeraMN, "chimera-cells", 16, "chimera grid side (C(m,m,4))")
	fl.IntSliceVar(&f.dead, "dead-qubits", nil, "qubits missing from the working graph")
	fl.StringVar(&f.finder, "finder", finderPath, "embedding finder: path|native")
	fl.IntVar(&f.maxPath, "max-path", 0, "path finder: longest chain-joining path in couplers (0: unbounded)")
	fl.BoolVar(&f.trace, "trace", false, "print OpenTelemetry spans to stderr")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after the run")
	cmd.MarkFlagsOneRequired("graph", "random")
	cmd.MarkFlagsMutuallyExclusive("graph", "random")

	return cmd
}

func runRun(cmd *cobra.Command, configPath string, f runFlags) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	if f.trace {
		shutdown, err := startTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("trace shutdown", slog.Any("error", err))
			}
		}()
	}

	g, tag, err := problemGraph(f, cfg.Seed)
	if err != nil {
		return err
	}
	problem, err := qubo.DominatingSet(g, cfg.Penalty)
	if err != nil {
		return err
	}

	var topo *core.Graph
	switch f.topology {
	case topologyComplete:
		n := f.size
		if n == 0 {
			n = problem.QUBO.Size()
		}
		topo, err = builder.BuildGraph(nil, nil, builder.Complete(n))
	case topologyChimera:
		topo, err = builder.BuildGraph(nil, nil, builder.Chimera(f.chimeraMN, f.chimeraMN, 4))
	default:
		return fmt.Errorf("unknown topology %q (want %s or %s)", f.topology, topologyChimera, topologyComplete)
	}
	if err != nil {
		return err
	}
	qubits := topo.VertexCount()
	if topo, err = hardware.WorkingGraph(topo, f.dead); err != nil {
		return err
	}
	sim, err := hardware.NewSimulator(topo,
		hardware.WithName(cfg.Machine),
		hardware.WithSeed(cfg.Seed),
		hardware.WithQubitCount(qubits),
	)
	if err != nil {
		return err
	}
	if n := sim.Properties().QubitCount; n != cfg.QubitCount {
		logger.Info("qubit count follows the topology", slog.Int("configured", cfg.QubitCount), slog.Int("qubits", n))
		cfg.QubitCount = n
	}

	var opts []pipeline.Option
	opts = append(opts, pipeline.WithLogger(logger))
	switch {
	case f.emb != "":
		emb, err := readEmbeddingFile(f.emb)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithFinder(embedding.FixedFinder{Embedding: emb}))
	case f.finder == finderPath:
		opts = append(opts, pipeline.WithFinder(embedding.NewPathFinder(cfg.Seed, f.maxPath)))
	case f.finder == finderNative:
		opts = append(opts, pipeline.WithFinder(embedding.NativeFinder{}))
	default:
		return fmt.Errorf("unknown finder %q (want %s or %s)", f.finder, finderPath, finderNative)
	}

	var st *store.Badger
	if cfg.Store.InMemory {
		st, err = store.OpenInMemory()
	} else {
		st, err = store.Open(store.Config{Path: cfg.Store.Path, Logger: logger})
	}
	if err != nil {
		return err
	}
	defer st.Close()

	runner, err := pipeline.NewRunner(cfg, sim, st, opts...)
	if err != nil {
		return err
	}
	if f.tag != "" {
		tag = f.tag
	}
	res, err := runner.Run(cmd.Context(), pipeline.Input{Tag: tag, Graph: g, Problem: problem})
	if err != nil {
		return err
	}

	printRun(cmd, res)
	if f.metrics {
		return writeMetrics(cmd.OutOrStdout(), prometheus.DefaultGatherer)
	}
	return nil
}

// problemGraph reads --graph or samples --random, returning the graph and
// its default tag.
func problemGraph(f runFlags, seed int64) (*core.Graph, string, error) {
	if f.graph != "" {
		g, err := readEdgesFile(f.graph)
		return g, f.graph, err
	}
	n, p, err := parseRandom(f.random)
	if err != nil {
		return nil, "", err
	}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	if err != nil {
		return nil, "", err
	}

	return g, fmt.Sprintf("G(%d,%g)", n, p), nil
}

func printRun(cmd *cobra.Command, res *pipeline.Result) {
	out := cmd.OutOrStdout()
	best, feasible := -1, 0
	for i, d := range res.Data {
		if d.ConstraintSatisfaction {
			feasible++
		}
		if best < 0 || d.Energy < res.Data[best].Energy {
			best = i
		}
	}
	fmt.Fprintf(out, "run         %s\n", res.RunID)
	fmt.Fprintf(out, "experiment  %s (%s)\n", res.Experiment.Key(), res.Experiment.Tag)
	fmt.Fprintf(out, "range       %s after %d attempt(s)\n", res.Selection.Range, len(res.Selection.Attempts))
	fmt.Fprintf(out, "reads       %d, %d satisfy the constraints\n", len(res.Data), feasible)
	if best >= 0 {
		d := res.Data[best]
		fmt.Fprintf(out, "best        energy=%g chain_break=%g config=%v\n", d.Energy, d.ChainBreakFraction, d.SpinConfig)
	}
}

func newIsingCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "ising",
		Short: "Print the Ising form (J, h, g) of a QUBO matrix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := readMatrixFile(path)
			if err != nil {
				return err
			}
			model, err := ising.FromMatrix(m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			cs := model.Couplings()
			sort.Slice(cs, func(a, b int) bool {
				if cs[a].I != cs[b].I {
					return cs[a].I < cs[b].I
				}
				return cs[a].J < cs[b].J
			})
			for _, c := range cs {
				fmt.Fprintf(out, "J %d %d %g\n", c.I, c.J, c.Value)
			}
			for i, h := range model.H {
				fmt.Fprintf(out, "h %d %g\n", i, h)
			}
			fmt.Fprintf(out, "g %g\n", model.G)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "qubo", "", "whitespace-separated square matrix file")
	_ = cmd.MarkFlagRequired("qubo")

	return cmd
}
