package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/respcore/resp3codec/pkg/resp"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Parse RESP2/RESP3 bytes from stdin and print the decoded values",
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read stdin: %v\n", err)
			os.Exit(1)
		}

		c := resp.New()
		c.Write(raw)
		values, err := c.Parse()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to decode: %v\n", err)
			os.Exit(1)
		}
		for _, v := range values {
			fmt.Println(formatValue(v))
		}
		if pending := c.Pending(); pending > 0 {
			fmt.Fprintf(os.Stderr, "warning: %d trailing byte(s) form an incomplete value\n", pending)
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

// formatValue renders v the way a human debugging a connection would want
// to read it: the Kind name, then a type-appropriate rendering of its
// payload. It is not the wire format and not meant to round-trip.
func formatValue(v resp.Value) string {
	switch v.Kind {
	case resp.KindSimpleString:
		return fmt.Sprintf("SimpleString(%q)", v.Str)
	case resp.KindBlobString:
		return fmt.Sprintf("BlobString(%q)", v.Blob)
	case resp.KindVerbatimString:
		return fmt.Sprintf("VerbatimString(%s:%q)", v.Format, v.Str)
	case resp.KindInteger:
		return fmt.Sprintf("Integer(%d)", v.Int)
	case resp.KindBigInteger:
		return fmt.Sprintf("BigInteger(%s)", v.Big.String())
	case resp.KindDouble:
		return fmt.Sprintf("Double(%v)", v.Double)
	case resp.KindBoolean:
		return fmt.Sprintf("Boolean(%v)", v.Bool)
	case resp.KindNull:
		return "Null"
	case resp.KindError:
		return fmt.Sprintf("Error(%s, %q)", v.ErrCode, v.ErrMessage)
	case resp.KindArray:
		return fmt.Sprintf("Array%s", formatChildren(v.Array))
	case resp.KindSet:
		return fmt.Sprintf("Set%s", formatChildren(v.Set))
	case resp.KindMap:
		parts := make([]string, len(v.Pairs))
		for i, p := range v.Pairs {
			parts[i] = fmt.Sprintf("%s: %s", formatValue(p.Key), formatValue(p.Value))
		}
		return fmt.Sprintf("Map{%s}", strings.Join(parts, ", "))
	default:
		return v.Kind.String()
	}
}

func formatChildren(children []resp.Value) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = formatValue(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
