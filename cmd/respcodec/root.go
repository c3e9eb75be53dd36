package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/respcore/resp3codec/internal/log"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "respcodec",
	Short: "Encode and decode RESP2/RESP3 values from the command line",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetOptions(log.Options{Stdout: true, Level: "debug"})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
