package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/ginjaninja78/imu-csv-splitter/cmd.Version=1.2.0 \
//	  -X github.com/ginjaninja78/imu-csv-splitter/cmd.BuildDate=$(date -u +%F)"
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// versionCmd prints build metadata alongside the fixed output layout, so a
// recording split on one machine can be matched to the splitter that did it.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and output-format information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "splitter %s (built %s, %s %s/%s)\n",
			Version, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintln(out, "outputs: acc_data.csv (ax, ay, az), mag_data.csv (mx, my, mz)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
