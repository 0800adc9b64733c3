package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive prompt",
	Long: `Reads one input per line and prints its truth table.
End a line with \ to continue it on the next line.

Commands:
  :last          show the most recent table again
  :history [n]   list stored inputs, newest first
  :quit          leave the prompt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.InOrStdin(), newRenderer(cmd.OutOrStdout(), cfg.Display))
	},
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "truthtable (Ctrl+D to exit, :help for commands)")
	fmt.Fprintln(w)
}

// runREPL reads inputs line by line until EOF or :quit.
func runREPL(in io.Reader, r *renderer) error {
	printBanner(r.out)

	reader := bufio.NewReader(in)
	var multiline strings.Builder
	inMultiline := false

	for {
		if inMultiline {
			fmt.Fprint(r.out, "... ")
		} else {
			fmt.Fprint(r.out, ">>> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(r.out)
			return nil
		}

		line = strings.TrimRight(line, "\r\n")

		if strings.HasSuffix(line, "\\") {
			multiline.WriteString(strings.TrimSuffix(line, "\\"))
			multiline.WriteString(" ")
			inMultiline = true
			continue
		}

		var input string
		if inMultiline {
			multiline.WriteString(line)
			input = multiline.String()
			multiline.Reset()
			inMultiline = false
		} else {
			input = line
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ":") {
			if quit := replCommand(r, input); quit {
				return nil
			}
			continue
		}

		// Errors are already rendered; keep prompting.
		_ = compute(r, input)
	}
}

// replCommand handles a :command line and reports whether the REPL should exit.
func replCommand(r *renderer, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":last":
		if err := showLast(r); err != nil {
			r.Error(err)
		}
	case ":history":
		limit := 10
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				r.Error(fmt.Errorf("invalid history limit %q", fields[1]))
				return false
			}
			limit = n
		}
		if err := showHistory(r, limit); err != nil {
			r.Error(err)
		}
	case ":help":
		fmt.Fprintln(r.out, "  :last, :history [n], :quit")
	default:
		r.Error(fmt.Errorf("unknown command %s", fields[0]))
	}
	return false
}
