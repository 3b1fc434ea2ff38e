package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"basket/internal/state"
	"basket/internal/summary"
)

func (c *cli) listsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List all grocery lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.app().State()
			out := cmd.OutOrStdout()
			for _, l := range s.Lists {
				marker := " "
				if s.Current != nil && s.Current.ID == l.ID {
					marker = "*"
				}
				done, total := summary.Completion(l.Items)
				line := fmt.Sprintf("%s %s  %-28s %d/%d", marker, shortID(l.ID), l.Name, done, total)
				if l.Template {
					line += "  (template)"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func (c *cli) newListCmd() *cobra.Command {
	var template bool
	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a list and make it current",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("list name is empty")
			}
			create := state.NewCreateList(name, template, c.app().Now())
			c.app().Dispatch(create)
			fmt.Fprintf(cmd.OutOrStdout(), "Created list %q (%s)\n", name, shortID(create.List.ID))
			return nil
		},
	}
	cmd.Flags().BoolVar(&template, "template", false, "mark the list as made from a template")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printList(cmd.OutOrStdout())
		},
	}
}

func (c *cli) deleteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-list LIST",
		Short: "Delete a list by name or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.app().DeleteList(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted list %q\n", l.Name)
			return nil
		},
	}
}

func (c *cli) printList(out io.Writer) error {
	cur, err := c.app().Current()
	if err != nil {
		return err
	}
	s := c.app().State()
	now := c.app().Now()

	done, total := summary.Completion(cur.Items)
	pct := int(summary.CompletionRatio(cur.Items)*100 + 0.5)
	fmt.Fprintf(out, "%s  (%d/%d completed, %d%%)\n", cur.Name, done, total, pct)

	active, completed := summary.Split(cur.Items)
	if len(cur.Items) == 0 {
		fmt.Fprintln(out, "  no items yet")
	}
	if len(active) > 0 {
		fmt.Fprintln(out, "To buy")
		for _, it := range active {
			fmt.Fprintln(out, "  "+itemLine(it, s.Settings.Currency, now))
		}
	}
	if len(completed) > 0 {
		fmt.Fprintln(out, "Completed")
		for _, it := range completed {
			fmt.Fprintln(out, "  "+itemLine(it, s.Settings.Currency, now))
		}
	}

	fmt.Fprintln(out, budgetLine(s.Settings, cur.Items))
	return nil
}
