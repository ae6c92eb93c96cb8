package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the tool version, overridable at build time with
// -ldflags "-X .../commands.Version=x.y.z".
var Version = "1.0.0"

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tfbinpack %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	},
}
