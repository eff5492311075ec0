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
	"github.com/dustin/go-humanize"
	"github.com/go-resty/resty/v2"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	"log"
	"net/http"
	"strings"

	"github.com/projhub/projhub-cli/api"
	"github.com/projhub/projhub-cli/platform"
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects on the platform",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		mine, _ := cmd.Flags().GetBool("mine")

		projects, err := runProjectsCmd(client, mine)
		if err != nil {
			log.Fatal(err)
		}

		var output []string
		row := []string{"ID", "NAME", "OWNERS", "SIZE", "TAGS", "CREATED", "APPROVED"}
		output = append(output, strings.Join(row, "|"))

		for _, project := range projects {
			var owners []string
			for _, owner := range project.Owners {
				owners = append(owners, owner.Username)
			}

			approved := "no"
			if project.Approved != 0 {
				approved = "yes"
			}

			created := "N/A"
			if at := api.ParseLogTimestamp(project.CreatedAt); !at.IsZero() {
				created = humanize.Time(at)
			}

			row := []string{
				fmt.Sprintf("%d", project.Id),
				project.Name,
				strings.Join(owners, ","),
				humanize.Bytes(uint64(project.FileSize)),
				strings.Join(project.Tags, ","),
				created,
				approved,
			}

			output = append(output, strings.Join(row, "|"))
		}
		result := columnize.SimpleFormat(output)
		fmt.Println(result)
	},
}

func runProjectsCmd(client *resty.Client, mine bool) ([]*api.Project, error) {
	url := "/api/projects"
	if mine {
		url = "/api/my-projects"
	}

	result := &api.ProjectListResult{}
	resp, err := client.R().
		SetResult(result).
		SetError(result).
		Get(url)

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
	rootCmd.AddCommand(projectsCmd)

	projectsCmd.Flags().Bool("mine", false, "Only projects you own, including unapproved ones")
}
