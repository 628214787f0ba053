package cmd

import (
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"imgapi-client/cmd/channel"
	"imgapi-client/cmd/image"
	"imgapi-client/internal/constants"
	"imgapi-client/internal/formatter"
	"imgapi-client/internal/log"
	"imgapi-client/internal/telemetry"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "img",
	Short: "img - Command line tool to browse a remote image catalog.",
	Long: `
	img talks to an image catalog service as used by SmartOS and Triton
	deployments. It lists and inspects image manifests, shows distribution
	channels and downloads image files.`,

	Run: func(cmd *cobra.Command, args []string) {
		myFigure := figure.NewFigure("img", "", true)
		myFigure.Print()
		logrus.Printf("\n")
		cmd.Help()
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetry.Shutdown()
	},
}

// called on module init
func init() {
	cobra.OnInitialize(initConfig)
	cobra.EnableCaseInsensitive = true

	setDefaults()
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Full path to a specific configuration file for the CLI. "+
			"Defaults to '$HOME/.img-cli.yaml'.")
	rootCmd.PersistentFlags().StringP("url", "U", constants.DefaultHost,
		"Image catalog URL.")
	rootCmd.PersistentFlags().StringP("output", "o", formatter.TableFormatKey,
		"Select the desired output format. Allowed values: table, json, pretty, yaml.")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info",
		"Select the desired log level format. Allowed values: debug, info, warn, error, fatal.")
	rootCmd.PersistentFlags().Bool("debug", false, "Use debug mode, same as --logLevel debug.")
	rootCmd.PersistentFlags().
		Bool("disable-color", false, "Disable colors in output. (default false)")
	rootCmd.PersistentFlags().Duration("timeout", 0,
		"Request timeout, example: 30s, 5m. Zero means no timeout.")
	rootCmd.PersistentFlags().Bool("insecure", false,
		"Skip TLS certificate verification for https catalog endpoints. "+
			"Defaults to false.")
	rootCmd.PersistentFlags().Bool("disable-telemetry", false,
		"Disable sending anonymous usage events. (default false)")

	//Bind peristents flags to viper
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("logLevel"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("disable-color", rootCmd.PersistentFlags().Lookup("disable-color"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("insecure", rootCmd.PersistentFlags().Lookup("insecure"))
	viper.BindPFlag("disable-telemetry", rootCmd.PersistentFlags().Lookup("disable-telemetry"))

	rootCmd.AddCommand(image.ImageCmd)
	rootCmd.AddCommand(channel.ChannelCmd)
	rootCmd.AddCommand(pingCmd)
}

// Execute commands
func Execute(version string) {
	rootCmd.Version = version
	telemetry.VERSION = version
	rootCmd.SetVersionTemplate("img version: {{.Version}}\n")
	if err := rootCmd.Execute(); err != nil {
		// Set log level and formatter for this error
		log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
		logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
}

func setDefaults() {
	viper.SetDefault("url", constants.DefaultHost)
	viper.SetDefault("output", formatter.TableFormatKey)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
	viper.SetDefault("disable-color", false)
	viper.SetDefault("timeout", time.Duration(0))
	viper.SetDefault("insecure", false)
	viper.SetDefault("disable-telemetry", false)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".img-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(constants.DefaultConfigName)
	}

	//Will check every environment variable starting with IMG_
	viper.SetEnvPrefix(constants.EnvPrefix)
	//Read all enviromnent variable that match IMG_ENVNAME
	viper.AutomaticEnv() // read in environment variables that match
	// Set log level and formatter
	log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("Using config file: %s\n", viper.ConfigFileUsed())
	}
}
