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
	"github.com/go-resty/resty/v2"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	"log"
	"net/http"
	"strings"

	"github.com/projhub/projhub-cli/api"
	"github.com/projhub/projhub-cli/platform"
)

// notificationsCmd represents the notifications command
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List your notifications",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		unreadOnly, _ := cmd.Flags().GetBool("unread")

		notifications, err := runNotificationsCmd(client, unreadOnly)
		if err != nil {
			log.Fatal(err)
		}

		var output []string
		row := []string{"ID", "TYPE", "MESSAGE", "READ"}
		output = append(output, strings.Join(row, "|"))

		for _, notification := range notifications {
			read := ""
			if notification.Read == 0 {
				read = "unread"
			}

			row := []string{
				fmt.Sprintf("%d", notification.Id),
				notification.Type,
				notification.Message,
				read,
			}

			output = append(output, strings.Join(row, "|"))
		}
		result := columnize.SimpleFormat(output)
		fmt.Println(result)
	},
}

// notificationsReadAllCmd represents the notifications read-all command
var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		if err := runNotificationsReadAllCmd(client); err != nil {
			log.Fatal(err)
		}

		fmt.Println("All notifications marked as read")
	},
}

func runNotificationsCmd(client *resty.Client, unreadOnly bool) ([]*api.Notification, error) {
	request := client.R()
	if unreadOnly {
		request.SetQueryParam("unread_only", "true")
	}

	result := &api.NotificationListResult{}
	resp, err := request.
		SetResult(result).
		SetError(result).
		Get("/api/notifications")

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

func runNotificationsReadAllCmd(client *resty.Client) error {
	result := &api.ActionResult{}
	resp, err := client.R().
		SetResult(result).
		SetError(result).
		Put("/api/notifications/read-all")

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
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)

	notificationsCmd.Flags().Bool("unread", false, "Only unread notifications")
}
