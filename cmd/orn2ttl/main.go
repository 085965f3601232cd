package main

import (
	"fmt"
	"os"

	"github.com/csse-uoft/orn2ttl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		out        string
		format     string
		routingOut string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "orn2ttl",
		Short: "Convert Ontario Road Network extract into road network knowledge graph",
		Long: `orn2ttl joins ORN road elements with their attribute tables, keeps elements
inside region of interest, groups segments into named roads, connects them
to junctions and writes the result as RDF statements (Turtle, N-Triples or Parquet).

Optionally junction connectivity is exported as routing graph with
contraction hierarchies.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			cfg := orn2ttl.DefaultConfig()
			if configPath != "" {
				loaded, err := orn2ttl.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Path = out
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if cmd.Flags().Changed("routing-out") {
				cfg.Routing.Out = routingOut
			}
			_, err := orn2ttl.Run(cfg)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&out, "out", "o", "orn_toronto.ttl", "Output file")
	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Output format. Expected values: turtle / ntriples / parquet")
	cmd.Flags().StringVar(&routingOut, "routing-out", "", "Filename of routing graph CSV. E.g.: if file name is 'map.csv' then 3 files will be produced: 'map.csv' (edges), 'map_vertices.csv', 'map_shortcuts.csv'")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return cmd
}
