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

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		topics, err := runTopicsCmd(client)
		if err != nil {
			log.Fatal(err)
		}

		var output []string
		row := []string{"ID", "NAME", "DESCRIPTION"}
		output = append(output, strings.Join(row, "|"))

		for _, topic := range topics {
			row := []string{
				fmt.Sprintf("%d", topic.Id),
				topic.Name,
				topic.Description,
			}

			output = append(output, strings.Join(row, "|"))
		}
		result := columnize.SimpleFormat(output)
		fmt.Println(result)
	},
}

func runTopicsCmd(client *resty.Client) ([]*api.Topic, error) {
	result := &api.TopicListResult{}
	resp, err := client.R().
		SetResult(result).
		SetError(result).
		Get("/api/topics")

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

func init() {
	rootCmd.AddCommand(topicsCmd)
}
