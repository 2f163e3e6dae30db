package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/diillson/agent-pricing-factory/pkg/version"
)

const banner = `
     _                    _     ____       _      _
    / \   __ _  ___ _ __ | |_  |  _ \ _ __(_) ___(_)_ __   __ _
   / _ \ / _' |/ _ \ '_ \| __| | |_) | '__| |/ __| | '_ \ / _' |
  / ___ \ (_| |  __/ | | | |_  |  __/| |  | | (__| | | | | (_| |
 /_/   \_\__, |\___|_| |_|\__| |_|   |_|  |_|\___|_|_| |_|\__, |
         |___/                                            |___/
`

// displayWelcomeBanner exibe o banner de boas-vindas com a versão.
func displayWelcomeBanner(w io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, cyan(banner))
	fmt.Fprintln(w, blue(fmt.Sprintf("Agent Pricing Factory CLI (v%s)", version.FormatVersion())))
}
