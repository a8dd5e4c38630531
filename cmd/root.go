package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "shopgen",
	Short: "Generate a synthetic e-commerce dataset and load it into SQLite",
	Long: `
shopgen produces a small synthetic e-commerce dataset (customers, products,
orders, order items, payments) as CSV files and loads those files into a
SQLite database.

The two steps are independent commands connected only by a shared directory:

  shopgen generate   write the five CSV files (deterministic under --seed)
  shopgen load       rebuild the SQLite database from the CSV files`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("shopgen version %s\n", Version)
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./shopgen.config.json)")
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
		viper.SetConfigName("shopgen.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
