package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "agrogen",
	Short: "Synthetic partitioned agriculture datasets with known quality defects",
	Long: `
Agrogen produces year-partitioned parquet datasets of synthetic crop yield
and county crop abandonment records, then deliberately corrupts a controlled,
reproducible subset of them (null yields, negative yields, duplicate keys,
one missing referenced row, out-of-range percentages).

Every defect is counted and written to a ground-truth manifest, so a
data-quality or ETL pipeline can be validated against exactly which issues
exist and how many. Runs are deterministic: the same seed and config produce
byte-identical output.`,

	Run: func(cmd *cobra.Command, args []string) {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			cmd.Printf("agrogen version %s\n", Version)
			return
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./agrogen.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("agrogen.config")
	}

	viper.AutomaticEnv()

	// Missing config file is fine, defaults apply
	viper.ReadInConfig()
}
