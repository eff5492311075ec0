// Copyright 2024 ProjHub Team <dev@projhub.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/projhub/projhub-cli/cmd/configure"
	"github.com/projhub/projhub-cli/helper"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log"
	"os"
	"path"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "projhub",
	Short: "Administer a ProjHub course-project platform from the command line",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&helper.CfgFile, "config", "", "config file (default is $HOME/.projhub.toml)")

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "verbose output")

	rootCmd.PersistentFlags().String("remote", "", "Remote platform to talk to")
	viper.BindPFlag("remote", rootCmd.PersistentFlags().Lookup("remote"))

	rootCmd.AddCommand(configure.NewConfigureCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configName := ".projhub"

	if helper.CfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(helper.CfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".projhub" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)

		helper.CfgFile = path.Join(home, configName+".toml")
	}

	viper.SetEnvPrefix("projhub")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); Verbose && err != nil {
		log.Println(err)
	}

	if Verbose {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
