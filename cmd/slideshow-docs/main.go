// Command slideshow-docs writes packaging artefacts for slideshow: the man
// page or a shell completion script, always to stdout.
//
//	slideshow-docs man
//	slideshow-docs completion <bash|zsh|fish|powershell>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/slideshow/cmd/slideshow"
	"github.com/arthur-debert/slideshow/internal/version"
)

const usage = "Usage: %s man | completion <bash|zsh|fish|powershell>\n"

func main() {
	if err := generate(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(1)
	}
}

func generate(out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing artefact")
	}

	rootCmd := slideshow.NewRootCmd()
	switch args[0] {
	case "man":
		return doc.GenMan(rootCmd, &doc.GenManHeader{
			Title:   "SLIDESHOW",
			Section: "1",
			Source:  "slideshow " + version.Version,
			Manual:  "slideshow manual",
		}, out)
	case "completion":
		if len(args) < 2 {
			return fmt.Errorf("missing shell")
		}
		return completion(rootCmd, out, args[1])
	default:
		return fmt.Errorf("unknown artefact %q", args[0])
	}
}

func completion(rootCmd *cobra.Command, out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(out, true)
	case "zsh":
		return rootCmd.GenZshCompletion(out)
	case "fish":
		return rootCmd.GenFishCompletion(out, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unknown shell %q (supported: bash, zsh, fish, powershell)", shell)
	}
}
