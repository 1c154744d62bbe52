package protocol

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/service"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath            string
	envPath               string
	destinationConfigPath string
	dataDir               string
	format                string
	logLevel              string
	noCap                 bool

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rogue",
	Short: "generate, clean and upload synthetic order records",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'rogue --help' to display usage guide", args[0])
		}

		return nil
	},
}

func setDefaults() {
	viper.SetDefault(constants.DataDir, "data")
	viper.SetDefault(constants.MaxPrice, constants.DefaultMaxPrice)
	viper.SetDefault(constants.DefaultQtyKey, constants.DefaultQty)
	viper.SetDefault(constants.LogLevel, "info")
	viper.SetDefault(constants.Records, 10000)
	viper.SetDefault(constants.RogueProb, 0.1)
	viper.SetDefault(constants.Seed, 0)
}

// setup loads the environment, the optional config file and the flags into
// viper, then initializes the logger.
func setup(cmd *cobra.Command) error {
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load env file %s: %s", envPath, err)
	}

	setDefaults()
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %s", configPath, err)
		}
	}

	if cmd.Flags().Changed("data-dir") {
		viper.Set(constants.DataDir, dataDir)
	}
	if cmd.Flags().Changed("log-level") {
		viper.Set(constants.LogLevel, logLevel)
	}

	// raw and cleaned default to sub directories of the data directory
	dir := viper.GetString(constants.DataDir)
	viper.SetDefault(constants.RawDir, filepath.Join(dir, "raw"))
	viper.SetDefault(constants.CleanedDir, filepath.Join(dir, "cleaned"))

	logger.Init()
	return nil
}

func serviceConfig() service.Config {
	return service.Config{
		RawDir:     viper.GetString(constants.RawDir),
		CleanedDir: viper.GetString(constants.CleanedDir),
		MaxPrice:   viper.GetFloat64(constants.MaxPrice),
		DefaultQty: viper.GetInt64(constants.DefaultQtyKey),
		CapPrice:   !noCap,
		Format:     types.FileFormat(format),
	}
}

func newService() (*service.Service, error) {
	return service.New(serviceConfig(), nil)
}

func CreateRootCommand() *cobra.Command {
	RootCmd.AddCommand(commands...)
	return RootCmd
}

func init() {
	commands = append(commands, generateCmd, cleanCmd, uploadCmd, runCmd, serveCmd, checkCmd, specCmd)
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "", "(Optional) Config file (json, yaml or toml) overriding the defaults")
	RootCmd.PersistentFlags().StringVarP(&envPath, "env-file", "", ".env", "(Optional) Env file loaded before reading ROGUE_* variables")
	RootCmd.PersistentFlags().StringVarP(&destinationConfigPath, "destination", "", "", "Upload destination config")
	RootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "", "data", "Directory holding the raw and cleaned folders")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "", string(types.CSV), "Output format of cleaned files (csv or parquet)")
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Log level")
	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
