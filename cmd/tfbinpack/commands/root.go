// Package commands implements the tfbinpack command line interface.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

var (
	cfgFile string

	flagAlgorithm     string
	flagInitialWidth  uint
	flagInitialHeight uint
	flagMaxWidth      uint
	flagMaxHeight     uint
	flagPadding       uint
	flagPowerOfTwo    bool
	flagMinSide       uint
	flagMinArea       uint
)

var rootCmd = &cobra.Command{
	Use:   "tfbinpack",
	Short: "Texture layout optimizer",
	Long: `tfbinpack packs rectangular items onto the fewest, smallest canvases.

Items come from CSV/Excel cut lists, DXF drawings or directories of
sprite images. Results can be written as JSON, PDF reports, QR label
sheets and PNG atlas images.`,
	Version: Version,
	Run:     nil,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := model.DefaultSettings()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.tfbinpack.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagAlgorithm, "algorithm", string(defaults.Algorithm), "layout algorithm (bestfit or genetic)")
	rootCmd.PersistentFlags().UintVar(&flagInitialWidth, "initial-width", defaults.InitialWidth, "starting canvas width in px")
	rootCmd.PersistentFlags().UintVar(&flagInitialHeight, "initial-height", defaults.InitialHeight, "starting canvas height in px")
	rootCmd.PersistentFlags().UintVar(&flagMaxWidth, "max-width", defaults.MaxWidth, "maximum canvas width in px")
	rootCmd.PersistentFlags().UintVar(&flagMaxHeight, "max-height", defaults.MaxHeight, "maximum canvas height in px")
	rootCmd.PersistentFlags().UintVar(&flagPadding, "padding", defaults.Padding, "padding added around each item in px")
	rootCmd.PersistentFlags().BoolVar(&flagPowerOfTwo, "power-of-two", defaults.PowerOfTwo, "round grown canvas dimensions up to powers of two")
	rootCmd.PersistentFlags().UintVar(&flagMinSide, "min-offcut-side", defaults.MinOffcutSide, "minimum side for a free region to count as reusable")
	rootCmd.PersistentFlags().UintVar(&flagMinArea, "min-offcut-area", defaults.MinOffcutArea, "minimum area for a free region to count as reusable")

	rootCmd.AddCommand(PackCmd)
	rootCmd.AddCommand(CompareCmd)
	rootCmd.AddCommand(VersionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".tfbinpack.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// layoutSettings merges defaults, config file values and command line flags,
// in that order of increasing precedence.
func layoutSettings(cmd *cobra.Command) model.LayoutSettings {
	settings := model.DefaultSettings()

	merge := func(key, flag string, flagValue uint, dst *uint) {
		if viper.IsSet(key) {
			*dst = viper.GetUint(key)
		}
		if cmd.Flags().Changed(flag) {
			*dst = flagValue
		}
	}

	if viper.IsSet("algorithm") {
		settings.Algorithm = model.Algorithm(viper.GetString("algorithm"))
	}
	if cmd.Flags().Changed("algorithm") {
		settings.Algorithm = model.Algorithm(flagAlgorithm)
	}

	merge("initial_width", "initial-width", flagInitialWidth, &settings.InitialWidth)
	merge("initial_height", "initial-height", flagInitialHeight, &settings.InitialHeight)
	merge("max_width", "max-width", flagMaxWidth, &settings.MaxWidth)
	merge("max_height", "max-height", flagMaxHeight, &settings.MaxHeight)
	merge("padding", "padding", flagPadding, &settings.Padding)
	merge("min_offcut_side", "min-offcut-side", flagMinSide, &settings.MinOffcutSide)
	merge("min_offcut_area", "min-offcut-area", flagMinArea, &settings.MinOffcutArea)

	if viper.IsSet("power_of_two") {
		settings.PowerOfTwo = viper.GetBool("power_of_two")
	}
	if cmd.Flags().Changed("power-of-two") {
		settings.PowerOfTwo = flagPowerOfTwo
	}

	return settings
}
