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
	"github.com/fatih/color"
	"github.com/imdario/mergo"
	"github.com/ryanuber/columnize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"log"
	"os"
	"strings"

	"github.com/projhub/projhub-cli/api"
	"github.com/projhub/projhub-cli/helper"
	"github.com/projhub/projhub-cli/platform"
)

var levelColors = map[string]func(format string, a ...interface{}) string{
	"DEBUG":    color.CyanString,
	"INFO":     color.GreenString,
	"WARNING":  color.YellowString,
	"ERROR":    color.RedString,
	"CRITICAL": color.MagentaString,
}

// cmdFs is swapped for a memory filesystem in tests.
var cmdFs = afero.NewOsFs()

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Browse the platform action log",
	Long: `Browse the platform action log with filtering, pagination and sorting.

The log endpoint returns no total count, so the existence of a further page
is detected by probing the next one. Use --all to fetch everything as a
single page, or --interactive to page through results from a prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.Client(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		filter, err := buildLogFilter(cmd)
		if err != nil {
			log.Fatal(err)
		}

		page, err := cmd.Flags().GetInt("page")
		helper.CheckError(err)
		ascending, err := cmd.Flags().GetBool("asc")
		helper.CheckError(err)

		pager := platform.NewLogPager(client)
		pager.SetAscending(ascending)
		pager.SetFilter(filter)
		pager.SetPage(page)

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			if err := runInteractiveLogs(pager, os.Stdin, os.Stdout); err != nil {
				log.Fatal(err)
			}
			return
		}

		if err := pager.Fetch(); err != nil {
			log.Fatal(err)
		}

		fmt.Println(renderLogTable(pager.Entries(), true))
		if pager.HasNext() {
			fmt.Printf("More results available, rerun with --page %d\n", pager.Page()+1)
		}

		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := exportLogs(cmdFs, output, pager.Entries()); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Wrote %d entries to %s\n", len(pager.Entries()), output)
		}
	},
}

// buildLogFilter assembles the query filter from the command flags, then
// backfills unset fields from the "logs" section of the config file.
func buildLogFilter(cmd *cobra.Command) (api.LogFilter, error) {
	filter := api.LogFilter{}

	filter.Username, _ = cmd.Flags().GetString("username")
	filter.Method, _ = cmd.Flags().GetString("method")
	filter.Path, _ = cmd.Flags().GetString("path")
	filter.Search, _ = cmd.Flags().GetString("search")
	filter.Start, _ = cmd.Flags().GetString("start")
	filter.End, _ = cmd.Flags().GetString("end")
	filter.Lines, _ = cmd.Flags().GetInt("lines")
	filter.PerPage, _ = cmd.Flags().GetInt("per-page")
	filter.Page = 1

	var configured api.LogFilter
	if err := viper.UnmarshalKey("logs", &configured); err == nil {
		if err := mergo.Merge(&filter, configured); err != nil {
			return filter, err
		}
	}

	if filter.Lines == 0 {
		filter.Lines = api.DefaultLines
	}
	if filter.PerPage == 0 {
		filter.PerPage = api.DefaultPerPage
	}

	// --all wins over everything, including configured defaults.
	if all, _ := cmd.Flags().GetBool("all"); all {
		filter.PerPage = api.PerPageAll
	}

	return filter, nil
}

func renderLogTable(entries []*api.LogEntry, colored bool) string {
	output := []string{strings.Join([]string{"TIMESTAMP", "LEVEL", "USER", "METHOD", "PATH", "STATUS", "MESSAGE"}, "|")}

	for _, entry := range entries {
		level := entry.Level
		if colored {
			if colorize, ok := levelColors[strings.ToUpper(level)]; ok {
				level = colorize("%s", level)
			}
		}

		row := []string{
			entry.Timestamp,
			level,
			entry.Username,
			entry.Method,
			entry.Path,
			entry.Status,
			entry.Message,
		}
		output = append(output, strings.Join(row, "|"))
	}

	return columnize.SimpleFormat(output)
}

// exportLogs writes the page as an uncolored table.
func exportLogs(fs afero.Fs, filename string, entries []*api.LogEntry) error {
	table := renderLogTable(entries, false)
	return afero.WriteFile(fs, filename, []byte(table+"\n"), 0644)
}

func printLogPage(out io.Writer, pager *platform.LogPager) {
	if message := pager.LastError(); message != "" {
		fmt.Fprintln(out, color.RedString("error: %s", message))
	}

	fmt.Fprintln(out, renderLogTable(pager.Entries(), true))

	direction := "newest first"
	if pager.Ascending() {
		direction = "oldest first"
	}

	footer := fmt.Sprintf("page %d, %s", pager.Page(), direction)
	if pager.HasNext() {
		footer += ", more available ('n' for next)"
	}
	if pager.Dirty() {
		footer += " [filters changed, 'a' to apply]"
	}
	fmt.Fprintln(out, footer)
}

// runInteractiveLogs pages through the action log from a prompt. Filter
// edits only mark the pager dirty; nothing is re-fetched until they are
// applied, so the screen never silently mixes stale rows with new filters.
func runInteractiveLogs(pager *platform.LogPager, stdin io.Reader, stdout io.Writer) error {
	pager.Fetch()

	reader := bufio.NewReader(stdin)
	for {
		printLogPage(stdout, pager)

		fmt.Fprint(stdout, "logs> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
		command := fields[0]
		value := ""
		if len(fields) > 1 {
			value = strings.TrimSpace(fields[1])
		}

		switch command {
		case "q", "quit":
			return nil
		case "n", "next":
			pager.NextPage()
		case "p", "prev":
			pager.PrevPage()
		case "s", "sort":
			pager.ToggleSort()
		case "a", "apply":
			pager.Fetch()
		case "r", "reset":
			pager.ResetFilter()
		case "user", "method", "path", "search", "start", "end":
			filter := pager.Filter()
			switch command {
			case "user":
				filter.Username = value
			case "method":
				filter.Method = value
			case "path":
				filter.Path = value
			case "search":
				filter.Search = value
			case "start":
				filter.Start = value
			case "end":
				filter.End = value
			}
			pager.SetFilter(filter)
		case "":
		default:
			fmt.Fprintf(stdout, "unknown command %q\n", command)
		}
	}
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().StringP("username", "u", "", "Only lines whose username contains this value")
	logsCmd.Flags().String("method", "", "Only lines whose HTTP method contains this value")
	logsCmd.Flags().String("path", "", "Only lines whose request path contains this value")
	logsCmd.Flags().String("search", "", "Only lines whose message contains this value")
	logsCmd.Flags().String("start", "", "Only lines at or after this datetime (example: 2024-03-01 10:00)")
	logsCmd.Flags().String("end", "", "Only lines at or before this datetime")
	logsCmd.Flags().Int("lines", api.DefaultLines, "Number of lines to read from the end of the log")
	logsCmd.Flags().Int("page", 1, "Page to fetch")
	logsCmd.Flags().Int("per-page", api.DefaultPerPage, "Rows per page")
	logsCmd.Flags().Bool("all", false, "Fetch everything as a single page")
	logsCmd.Flags().Bool("asc", false, "Sort oldest first instead of newest first")
	logsCmd.Flags().BoolP("interactive", "i", false, "Page through results from a prompt")
	logsCmd.Flags().StringP("output", "o", "", "Also write the fetched page to a file")
}
