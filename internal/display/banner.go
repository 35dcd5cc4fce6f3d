// Package display provides user-facing output: banner, byte-size
// formatting, and progress-bar wiring for the CLI.
package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintBanner prints the variantmix ASCII logo to stdout in magenta when
// color output is enabled.
func PrintBanner() {
	banner := color.New(color.FgMagenta)
	_, _ = banner.Fprint(os.Stdout, `__   __           _             _   __  __ _
\ \ / /_ _ _ __  (_) __ _ _ __ | |_|  \/  (_)_  __
 \ V / _` + "`" + ` | '_ \ | |/ _` + "`" + ` | '_ \| __| |\/| | \ \/ /
  | | (_| | | | || | (_| | | | | |_| |  | | |>  <
  |_|\__,_|_| |_|/ |\__,_|_| |_|\__|_|  |_|_/_/\_\
               |__/
`)
	fmt.Fprintln(os.Stdout)
}
