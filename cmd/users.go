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
	"github.com/dustin/go-humanize"
	"github.com/go-resty/resty/v2"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/projhub/projhub-cli/api"
	"github.com/projhub/projhub-cli/platform"
)

// usersCmd represents the users command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List platform users",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		users, err := runUsersCmd(client)
		if err != nil {
			log.Fatal(err)
		}

		var output []string
		row := []string{"ID", "USERNAME", "EMAIL", "ADMIN", "ORGANIZATION", "JOINED"}
		output = append(output, strings.Join(row, "|"))

		for _, user := range users {
			admin := ""
			if user.Admin != 0 {
				admin = "*"
			}

			joined := "N/A"
			if created := api.ParseLogTimestamp(user.CreatedAt); !created.IsZero() {
				joined = humanize.Time(created)
			}

			row := []string{
				fmt.Sprintf("%d", user.Id),
				user.Username,
				user.Email,
				admin,
				user.Organization,
				joined,
			}

			output = append(output, strings.Join(row, "|"))
		}
		result := columnize.SimpleFormat(output)
		fmt.Println(result)
	},
}

// usersDeleteCmd represents the users delete command
var usersDeleteCmd = &cobra.Command{
	Use:   "delete USER_ID",
	Short: "Delete a user and everything they own",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		if err := runUsersDeleteCmd(client, args[0], os.Stdin); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Deleted user %s\n", args[0])
	},
}

func runUsersCmd(client *resty.Client) ([]*api.User, error) {
	result := &api.UserListResult{}
	resp, err := client.R().
		SetResult(result).
		SetError(result).
		Get("/api/users")

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK || !result.Success {
		if result.Message != "" {
			return nil, fmt.Errorf("%s", result.Message)
		}
		return nil, fmt.Errorf("%s", resp.Body())
	}

	return result.Data, nil
}

func getAcceptUserDelete(stdin io.Reader, userId string) string {
	reader := bufio.NewReader(stdin)

	fmt.Printf("Do you want to delete user %s and all their projects (y/N): ", userId)
	accept, _ := reader.ReadString('\n')
	accept = strings.TrimSpace(accept)
	return accept
}

func runUsersDeleteCmd(client *resty.Client, userId string, stdin io.Reader) error {
	accept := getAcceptUserDelete(stdin, userId)
	if accept != "y" {
		fmt.Println("Deletion aborted")
		os.Exit(0)
	}

	result := &api.ActionResult{}
	resp, err := client.R().
		SetResult(result).
		SetError(result).
		Delete(fmt.Sprintf("/api/users/%s", userId))

	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK || !result.Success {
		if result.Message != "" {
			return fmt.Errorf("%s", result.Message)
		}
		return fmt.Errorf("%s", resp.Body())
	}

	return nil
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}
