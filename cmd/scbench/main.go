// Command scbench times the solver stack on generated supply-chain
// instances, one run per execution mode:
//
//	serial  — sequential Branch-and-Bound, scalar pivoting
//	pivots  — sequential Branch-and-Bound, row-parallel pivoting
//	nodes   — worker-pool Branch-and-Bound, scalar pivoting
//
// The modes solve identical instances and must report identical extrema;
// scbench exits non-zero if they disagree.
//
// Usage:
//
//	scbench -products 3 -factories 3 -warehouses 3 -stores 3 -reps 10
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	log "github.com/golang/glog"

	"github.com/katalvlaran/milp/ip"
	"github.com/katalvlaran/milp/supplychain"
)

// mode couples a label with its solver options.
type mode struct {
	name string
	opts ip.Options
}

// runMode solves the instance reps times and returns the mean wall time
// plus the mean node count and the extremum of the last run.
func runMode(cfg supplychain.Config, m mode, reps int) (meanMs float64, meanNodes float64, extremum float64, err error) {
	var (
		totalMs    float64
		totalNodes int
		r          int
	)
	for r = 0; r < reps; r++ {
		var prog = supplychain.Build(supplychain.Generate(cfg))

		var start = time.Now()
		sol, serr := prog.Solve(m.opts)
		if serr != nil {
			return 0, 0, 0, fmt.Errorf("mode %s rep %d: %w", m.name, r, serr)
		}
		totalMs += float64(time.Since(start).Microseconds()) / 1e3
		totalNodes += sol.NodesSolved
		extremum = sol.Extremum

		log.V(1).Infof("mode=%s rep=%d status=%s extremum=%.2f nodes=%d",
			m.name, r, sol.Status, sol.Extremum, sol.NodesSolved)
	}

	return totalMs / float64(reps), float64(totalNodes) / float64(reps), extremum, nil
}

func main() {
	var (
		products   = flag.Int("products", 3, "product count (I)")
		factories  = flag.Int("factories", 3, "factory count (J)")
		warehouses = flag.Int("warehouses", 3, "warehouse count (K)")
		stores     = flag.Int("stores", 3, "store count (L)")
		reps       = flag.Int("reps", 10, "repetitions per mode")
		workers    = flag.Int("workers", -1, "node-expansion workers for the nodes mode (-1 = NumCPU)")
	)
	flag.Parse()
	defer log.Flush()

	if *reps < 1 {
		log.Exit("reps must be ≥ 1")
	}

	var cfg = supplychain.DefaultConfig().
		WithSizes(*products, *factories, *warehouses, *stores)

	var serial, pivots, nodes = ip.DefaultOptions(), ip.DefaultOptions(), ip.DefaultOptions()
	pivots.ParallelPivots = true
	nodes.Workers = *workers

	var modes = []mode{
		{name: "serial", opts: serial},
		{name: "pivots", opts: pivots},
		{name: "nodes", opts: nodes},
	}

	var (
		ms   = make([]float64, len(modes))
		ext  = make([]float64, len(modes))
		avgN float64
		i    int
		m    mode
	)
	for i, m = range modes {
		var meanMs, meanNodes, extremum, err = runMode(cfg, m, *reps)
		if err != nil {
			log.Exitf("%v", err)
		}
		ms[i], ext[i] = meanMs, extremum
		if i == 0 {
			avgN = meanNodes
		}
	}

	for i = 1; i < len(modes); i++ {
		if ext[i] != ext[0] {
			log.Exitf("mode %s extremum %.6f disagrees with serial %.6f", modes[i].name, ext[i], ext[0])
		}
	}

	fmt.Println("-------------------- scbench --------------------")
	fmt.Printf(" Instance: %d products, %d factories, %d warehouses, %d stores\n",
		*products, *factories, *warehouses, *stores)
	fmt.Printf(" Repetitions per mode: %d | NumCPU: %d\n", *reps, runtime.NumCPU())
	fmt.Printf(" Extremum (all modes agree): %.2f\n", ext[0])
	fmt.Printf(" Mean LP nodes per solve: %.0f\n", avgN)
	fmt.Println("--------------------------------------------------")
	fmt.Printf(" [serial]  %8.3f ms/solve\n", ms[0])
	fmt.Printf(" [pivots]  %8.3f ms/solve | speedup vs serial: x %.2f\n", ms[1], ms[0]/ms[1])
	fmt.Printf(" [nodes]   %8.3f ms/solve | speedup vs serial: x %.2f\n", ms[2], ms[0]/ms[2])
	fmt.Println("-------------------- scbench --------------------")

	os.Exit(0)
}
