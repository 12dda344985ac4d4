package main

import (
	"fmt"
	"io"

	"metadata-catalog/internal/detail"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/types"
	"metadata-catalog/internal/view"

	"github.com/spf13/cobra"
)

func newSuiteCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Work with a single test suite",
	}
	cmd.AddCommand(
		newShowCmd(root),
		newDescribeCmd(root),
		newOwnerCmd(root),
		newCasesCmd(root),
	)
	return cmd
}

func newShowCmd(root *rootOptions) *cobra.Command {
	var (
		tab    int
		after  bool
		before bool
	)

	cmd := &cobra.Command{
		Use:   "show <fqn>",
		Short: "Load a test suite and print its detail page",
		Example: `  catalogctl suite show sample_data.ecommerce_db.shopify.orders.testSuite
  catalogctl suite show team_suite --tab 2
  catalogctl suite show team_suite --after`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !detail.Tab(tab).Valid() {
				return fmt.Errorf("--tab must be %d or %d", detail.TabTestCases, detail.TabPipeline)
			}

			c, err := root.newController(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			c.Mount(ctx, args[0])
			c.ChangeTab(detail.Tab(tab))
			switch {
			case after:
				c.ChangePage(ctx, paging.After, c.Snapshot().CurrentPage+1)
			case before:
				c.ChangePage(ctx, paging.Before, c.Snapshot().CurrentPage-1)
			}

			render(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().IntVar(&tab, "tab", int(detail.TabTestCases), "tab to show (1 test cases, 2 pipeline)")
	cmd.Flags().BoolVar(&after, "after", false, "show the next page of test cases")
	cmd.Flags().BoolVar(&before, "before", false, "show the previous page of test cases")
	cmd.MarkFlagsMutuallyExclusive("after", "before")
	return cmd
}

func newDescribeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <fqn> <text>",
		Short: "Replace the description of a test suite",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.newController(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			c.Mount(ctx, args[0])
			if c.Snapshot().State == detail.StateLoaded {
				c.SetDescriptionEditable(true)
				c.UpdateDescription(ctx, args[1])
			}

			render(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func newOwnerCmd(root *rootOptions) *cobra.Command {
	var ownerType, name string

	cmd := &cobra.Command{
		Use:   "owner <fqn>",
		Short: "Assign a user or team as owner of a test suite",
		Example: `  catalogctl suite owner team_suite --type team --name data
  catalogctl suite owner team_suite --type user --name alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch types.EntityType(ownerType) {
			case types.EntityTypeUser, types.EntityTypeTeam:
			default:
				return fmt.Errorf("--type must be %q or %q", types.EntityTypeUser, types.EntityTypeTeam)
			}

			c, err := root.newController(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			c.Mount(ctx, args[0])
			if c.Snapshot().State == detail.StateLoaded {
				c.UpdateOwner(ctx, &types.EntityReference{Type: types.EntityType(ownerType), Name: name})
			}

			render(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerType, "type", "", "owner kind: user or team")
	cmd.Flags().StringVar(&name, "name", "", "user or team name")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCasesCmd(root *rootOptions) *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "cases <fqn>",
		Short: "Walk forward through the test case pages of a suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1")
			}

			c, err := root.newController(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			c.Mount(ctx, args[0])
			render(cmd.OutOrStdout(), c)

			for i := 1; i < pages; i++ {
				snap := c.Snapshot()
				if snap.State != detail.StateLoaded || snap.Paging.Token(paging.After) == "" {
					break
				}
				c.ChangePage(ctx, paging.After, snap.CurrentPage+1)
				render(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to print")
	return cmd
}

func render(w io.Writer, c *detail.Controller) {
	fmt.Fprintln(w, view.Render(c.Snapshot()))
}
