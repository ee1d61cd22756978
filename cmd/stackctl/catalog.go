package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HammerMeetNail/aistackhub/internal/catalog"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

func newCatalogCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate the tool catalog",
	}

	var category string
	tools := &cobra.Command{
		Use:   "tools",
		Short: "List tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadCatalog()
			if err != nil {
				return err
			}
			directory := services.NewDirectoryService(c)
			list := directory.GetAll()
			if category != "" {
				list = directory.GetByCategory(category)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t$%d/mo\n", t.ID, t.Name, t.Category, t.MonthlyPrice)
			}
			return w.Flush()
		},
	}
	tools.Flags().StringVar(&category, "category", "", "only list tools in this category")

	workflows := &cobra.Command{
		Use:   "workflows",
		Short: "List workflows with their resolved tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadCatalog()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tDIFFICULTY\tCOST\tTOOLS")
			for _, wf := range services.NewDirectoryService(c).ListWorkflows() {
				names := make([]string, 0, len(wf.Tools))
				for _, t := range wf.Tools {
					names = append(names, t.Name)
				}
				fmt.Fprintf(w, "%s\t%s\t$%d/mo\t%s\n", wf.Slug, wf.Difficulty, wf.MonthlyCost, strings.Join(names, ", "))
			}
			return w.Flush()
		},
	}

	validate := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a YAML catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d tools, %d workflows\n", args[0], len(c.Tools()), len(c.Workflows()))
			if unmapped := c.UnmappedFocus(); len(unmapped) > 0 {
				fmt.Fprintf(out, "warning: no rule for focus %v, fallback applies\n", unmapped)
			}
			return nil
		},
	}

	cmd.AddCommand(tools, workflows, validate)
	return cmd
}
