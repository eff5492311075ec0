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
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/projhub/projhub-cli/api"
	"github.com/projhub/projhub-cli/helper"
	"github.com/projhub/projhub-cli/platform"
)

// coursesCmd represents the courses command
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List courses",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		courses, err := runCoursesCmd(client)
		if err != nil {
			log.Fatal(err)
		}

		var output []string
		row := []string{"ID", "CODE", "NAME", "SEMESTER", "TERM", "TOPICS"}
		output = append(output, strings.Join(row, "|"))

		for _, course := range courses {
			var topics []string
			for _, topic := range course.Topics {
				topics = append(topics, topic.Name)
			}

			row := []string{
				fmt.Sprintf("%d", course.Id),
				course.Code,
				course.Name,
				course.Semester,
				course.Term,
				strings.Join(topics, ","),
			}

			output = append(output, strings.Join(row, "|"))
		}
		result := columnize.SimpleFormat(output)
		fmt.Println(result)
	},
}

// coursesImportCmd represents the courses import command
var coursesImportCmd = &cobra.Command{
	Use:   "import CATALOG",
	Short: "Create the courses and topics listed in a catalog file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		catalog, err := api.LoadCourseCatalog(cmdFs, args[0])
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("We found %d courses to create\n", len(catalog.Courses))

		created, err := runCoursesImportCmd(client, catalog, os.Stdin)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Created %d courses\n", created)
	},
}

func runCoursesCmd(client *resty.Client) ([]*api.Course, error) {
	result := &api.CourseListResult{}
	resp, err := client.R().
		SetResult(result).
		SetError(result).
		Get("/api/courses")

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

func getAcceptImport(stdin io.Reader, catalog *api.CourseCatalog) string {
	reader := bufio.NewReader(stdin)
	fmt.Println(helper.PrettyPrint(catalog))
	fmt.Printf("Do you want to create these %d courses (y/N): ", len(catalog.Courses))
	accept, _ := reader.ReadString('\n')
	accept = strings.TrimSpace(accept)
	return accept
}

func runCoursesImportCmd(client *resty.Client, catalog *api.CourseCatalog, stdin io.Reader) (int, error) {
	accept := getAcceptImport(stdin, catalog)
	if accept != "y" {
		fmt.Println("Import aborted")
		os.Exit(0)
	}

	created := 0
	for _, course := range catalog.Courses {
		result := &api.ActionResult{}
		resp, err := client.R().
			SetBody(map[string]string{
				"code":        course.Code,
				"name":        course.Name,
				"semester":    course.Semester,
				"term":        course.Term,
				"description": course.Description,
			}).
			SetResult(result).
			SetError(result).
			Post("/api/courses")

		if err != nil {
			return created, err
		}

		if (resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK) || !result.Success {
			if result.Message != "" {
				return created, fmt.Errorf("course %s: %s", course.Code, result.Message)
			}
			return created, fmt.Errorf("course %s: %s", course.Code, resp.Body())
		}
		created++

		for _, topic := range course.Topics {
			if err := createTopic(client, topic); err != nil {
				return created, err
			}
		}
	}

	return created, nil
}

func createTopic(client *resty.Client, name string) error {
	result := &api.ActionResult{}
	resp, err := client.R().
		SetBody(map[string]string{"name": name}).
		SetResult(result).
		SetError(result).
		Post("/api/topics")

	if err != nil {
		return err
	}

	if (resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK) || !result.Success {
		if result.Message != "" {
			return fmt.Errorf("topic %s: %s", name, result.Message)
		}
		return fmt.Errorf("topic %s: %s", name, resp.Body())
	}

	return nil
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.AddCommand(coursesImportCmd)
}
