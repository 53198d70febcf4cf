package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/MacBench/internal/application/advisor"
	"github.com/turtacn/MacBench/internal/domain/view"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
)

// adviseResult is the json/yaml shape of an answer.
type adviseResult struct {
	*advisor.Response
	HTML  string `json:"html,omitempty"`
	Query string `json:"viewQuery"`
	Rows  int    `json:"rows"`
}

func newAdviseCmd() *cobra.Command {
	flags := &viewFlags{}
	var html bool
	cmd := &cobra.Command{
		Use:   "advise <question...>",
		Short: "Ask a buying question over the machines the view flags select",
		Example: `  macbench advise "best laptop under $1500 for coding"
  macbench advise --type desktop --scenario creative "which one for video editing?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := cliCtx.operationContext(cmd.Context())
			defer cancel()

			list, err := cliCtx.Services.Catalog.List(ctx, flags.state())
			if err != nil {
				return err
			}
			resp, err := cliCtx.Services.Advisor.Advise(ctx, &advisor.Request{
				Query:    strings.Join(args, " "),
				Language: string(cliCtx.Printer.Lang()),
				Scenario: list.State.Scenario,
				Rows:     list.Rows,
			})
			if err != nil {
				return err
			}
			cliCtx.Logger.Debug("advice generated",
				logging.String("source", string(resp.Source)),
				logging.Bool("cached", resp.Cached),
				logging.Int("rows", list.Count),
			)

			result := adviseResult{Response: resp, Query: list.Query, Rows: list.Count}
			if html {
				if result.HTML, err = advisor.RenderHTML(resp.Answer); err != nil {
					return err
				}
			}
			return PrintResult(cmd, result, func(w io.Writer, _ bool) error {
				body := resp.Answer
				if html {
					body = result.HTML
				}
				_, err := fmt.Fprintln(w, strings.TrimRight(body, "\n"))
				return err
			})
		},
	}
	flags.bind(cmd.Flags())
	cmd.Flags().BoolVar(&html, "html", false, "render the answer as HTML")
	return cmd
}

// linkResult is the json/yaml shape of a shareable link.
type linkResult struct {
	State view.State `json:"state"`
	Query string     `json:"query"`
	Link  string     `json:"link"`
}

func newLinkCmd() *cobra.Command {
	flags := &viewFlags{}
	var base string
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the canonical shareable link for a view",
		Long: "Print the canonical shareable link for the view the flags describe.\n" +
			"Parameters holding their default are omitted, so equal views always\n" +
			"produce the same link.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if base == "" {
				base = fmt.Sprintf("http://localhost:%d/", cliCtx.Config.Server.Port)
			}
			state := flags.state()
			result := linkResult{State: state, Query: state.QueryString(), Link: state.Link(base)}
			return PrintResult(cmd, result, func(w io.Writer, _ bool) error {
				_, err := fmt.Fprintln(w, result.Link)
				return err
			})
		},
	}
	flags.bind(cmd.Flags())
	cmd.Flags().StringVar(&base, "base", "", "link base URL (default: http://localhost:<server.port>/)")
	return cmd
}

//Personal.AI order the ending
