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

// reportsCmd represents the reports command
var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List moderation reports",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		status, _ := cmd.Flags().GetString("status")

		reports, err := runReportsCmd(client, status)
		if err != nil {
			log.Fatal(err)
		}

		var output []string
		row := []string{"ID", "REPORTER", "TARGET", "STATUS", "FILED", "REASON"}
		output = append(output, strings.Join(row, "|"))

		for _, report := range reports {
			target := ""
			if report.ReportedUserId != 0 {
				target = fmt.Sprintf("user %d", report.ReportedUserId)
			} else if report.ReportedProjectId != 0 {
				target = fmt.Sprintf("project %d", report.ReportedProjectId)
			}

			filed := "N/A"
			if created := api.ParseLogTimestamp(report.CreatedAt); !created.IsZero() {
				filed = humanize.Time(created)
			}

			row := []string{
				fmt.Sprintf("%d", report.Id),
				fmt.Sprintf("%d", report.ReporterId),
				target,
				report.Status,
				filed,
				report.Reason,
			}

			output = append(output, strings.Join(row, "|"))
		}
		result := columnize.SimpleFormat(output)
		fmt.Println(result)
	},
}

// reportsResolveCmd represents the reports resolve command
var reportsResolveCmd = &cobra.Command{
	Use:   "resolve REPORT_ID",
	Short: "Update the status of a moderation report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		status, _ := cmd.Flags().GetString("status")
		notes, _ := cmd.Flags().GetString("notes")

		if err := runReportsResolveCmd(client, args[0], status, notes); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Report %s marked %s\n", args[0], status)
	},
}

func runReportsCmd(client *resty.Client, status string) ([]*api.Report, error) {
	request := client.R()
	if status != "" {
		request.SetQueryParam("status", status)
	}

	result := &api.ReportListResult{}
	resp, err := request.
		SetResult(result).
		SetError(result).
		Get("/api/reports")

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

func runReportsResolveCmd(client *resty.Client, reportId string, status string, notes string) error {
	switch status {
	case api.ReportStatusPending, api.ReportStatusResolved, api.ReportStatusDismissed:
	default:
		return fmt.Errorf("invalid status %q, expected one of: %s, %s, %s",
			status, api.ReportStatusPending, api.ReportStatusResolved, api.ReportStatusDismissed)
	}

	result := &api.ActionResult{}
	resp, err := client.R().
		SetBody(map[string]string{"status": status, "admin_notes": notes}).
		SetResult(result).
		SetError(result).
		Put(fmt.Sprintf("/api/reports/%s", reportId))

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
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(reportsResolveCmd)

	reportsCmd.Flags().String("status", "", "Only reports with this status (pending, resolved, dismissed)")

	reportsResolveCmd.Flags().String("status", api.ReportStatusResolved, "New status (pending, resolved, dismissed)")
	reportsResolveCmd.Flags().String("notes", "", "Notes recorded with the decision")
}
