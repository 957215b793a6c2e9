// SPDX-License-Identifier: MIT
// Command transitmap is a thin front end over the formulation pipeline:
// read a network graph as JSON, emit an LP problem file, optionally run a
// solver against it and write the revised graph back out. The pipeline
// itself has no CLI concerns; everything below is wiring.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/weese/transit-map/config"
	"github.com/weese/transit-map/formulation"
	"github.com/weese/transit-map/iograph"
	"github.com/weese/transit-map/lp"
	"github.com/weese/transit-map/prepare"
	"github.com/weese/transit-map/solution"
	"github.com/weese/transit-map/solverrun"
)

func main() {
	var (
		solve = flag.Bool("solve", false, "invoke scip and write the revised graph to stdout")
	)
	flag.Parse()

	if err := run(*solve); err != nil {
		log.Fatal(err)
	}
}

func run(solve bool) error {
	g, err := iograph.Decode(os.Stdin)
	if err != nil {
		return fmt.Errorf("transitmap: %w", err)
	}

	prepared, err := prepare.Prepare(g)
	if err != nil {
		return fmt.Errorf("transitmap: %w", err)
	}

	cfg := config.DefaultConfig()
	model, err := formulation.Build(prepared, cfg)
	if err != nil {
		return fmt.Errorf("transitmap: %w", err)
	}
	problem := lp.Emit(model)

	if !solve {
		_, err := fmt.Fprint(os.Stdout, problem)
		return err
	}

	out, err := solverrun.Run(context.Background(), solverrun.SCIPCommand(), problem)
	if err != nil {
		return fmt.Errorf("transitmap: %w", err)
	}

	values, err := solution.Parse(bytes.NewReader(out))
	if err != nil {
		return fmt.Errorf("transitmap: %w", err)
	}

	revised := solution.Revise(prepared, values, cfg)
	return iograph.Encode(os.Stdout, revised)
}
