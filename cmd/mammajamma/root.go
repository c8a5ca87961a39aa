package mammajamma

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// configMissing is set when no config file was found on start-up.
	configMissing bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mammajamma",
	Short: "Visualize diatonic chord relationships",
	Long: `mammajamma draws the diatonic chords of a key as three petals around the tonic:
chords a third, a second and a fourth away. It can serve the diagram as a web page
with a key dropdown, or export it as SVG files.`,
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mammajamma.toml)")
}

func initConfig() {
	if cfgFile != "" {
		slog.Debug("Using config file", "path", cfgFile)
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mammajamma" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".mammajamma")
	}
	configureEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			slog.Debug("No config file found")

			configMissing = true
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}

	slog.Debug("Config loaded", "file", viper.ConfigFileUsed())
}

// configureEnv maps config keys to MAMMAJAMMA_ environment variables,
// "default-key" is read from MAMMAJAMMA_DEFAULT_KEY.
func configureEnv() {
	viper.SetEnvPrefix("mammajamma")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

const exampleConfig = `# port = 9000
# dev = false
# default-key = "C"
# out = "./diagrams"
`

func createExampleConfig() {
	configPath := "./.mammajamma.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Error("Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

// prepareRun writes the example config for commands that read their flags
// from it, then applies the config to the flags.
func prepareRun(cmd *cobra.Command, args []string) {
	if configMissing {
		createExampleConfig()

		configMissing = false
	}

	bindFlags(cmd, args)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}

		configName, ok := configKey(f.Name)
		if !ok {
			return
		}

		val := viper.Get(configName)

		err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		if err != nil {
			slog.Error("Error setting flag from config", "flag", f.Name, "error", err)
			panic(err)
		}

		slog.Debug("Flag set from config", "flag", f.Name, "key", configName, "value", val)
	})
}

// configKey finds the viper key holding the value of a flag. The flag name
// itself wins, then the name without hyphens ("defaultkey" for "default-key").
func configKey(flagName string) (string, bool) {
	for _, name := range []string{flagName, strings.ReplaceAll(flagName, "-", "")} {
		if viper.IsSet(name) {
			return name, true
		}
	}

	return "", false
}

// keysFromArgs returns the keys named on the command line, or every dropdown
// key when there are none.
func keysFromArgs(args []string) []model.Key {
	if len(args) == 0 {
		return theory.Keys()
	}

	keys := make([]model.Key, 0, len(args))
	for _, a := range args {
		keys = append(keys, model.Key(a))
	}

	return keys
}
