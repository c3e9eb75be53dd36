package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/respcore/resp3codec/pkg/resp"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [args...]",
	Short: "Render a command's arguments as a RESP bulk-string array",
	Example: "  respcodec encode SET foo bar\n  respcodec encode GET foo",
	Run: func(cmd *cobra.Command, args []string) {
		argv := make([]any, len(args))
		for i, a := range args {
			argv[i] = a
		}
		b, err := resp.Encode(argv...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(b)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
