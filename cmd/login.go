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
	"bufio"
	"fmt"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/projhub/projhub-cli/api"
	"github.com/projhub/projhub-cli/helper"
	"github.com/projhub/projhub-cli/platform"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login USERNAME",
	Short: "Log in to the platform and store the session token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.AnonymousClient(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		result, err := runLoginCmd(client, args[0], os.Stdin)
		if err != nil {
			log.Fatal(err)
		}

		if err := saveSessionToken(result.Token); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Logged in as %s\n", args[0])
		if result.User != nil && result.User.Admin == 0 {
			fmt.Println("Note: this account is not an administrator, moderation commands will be rejected")
		}
	},
}

func readPassword(stdin io.Reader) string {
	reader := bufio.NewReader(stdin)

	fmt.Print("Password: ")
	password, _ := reader.ReadString('\n')
	return strings.TrimSuffix(password, "\n")
}

func runLoginCmd(client *resty.Client, username string, stdin io.Reader) (*api.LoginResult, error) {
	password := readPassword(stdin)

	result := &api.LoginResult{}
	resp, err := client.R().
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(result).
		SetError(result).
		Post("/api/login")

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK || !result.Success {
		if result.Message != "" {
			return nil, fmt.Errorf("%s", result.Message)
		}
		return nil, fmt.Errorf("%s", resp.Body())
	}

	return result, nil
}

func saveSessionToken(token string) error {
	remote := viper.GetString("remote")
	if remote == "" {
		remote = "default"
		viper.Set("remote", remote)
	}

	viper.Set(fmt.Sprintf("%s.token", remote), token)
	return viper.WriteConfigAs(helper.CfgFile)
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
