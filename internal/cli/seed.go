package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"basket/internal/catalog"
)

func (c *cli) templateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template [ID]",
		Short: "List templates, or create a list from one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, t := range catalog.Templates {
					fmt.Fprintf(out, "%-20s %s %s (%d items)\n", t.ID, t.Icon, t.Name, len(t.Items))
				}
				return nil
			}
			t, ok := catalog.TemplateByID(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}
			s := c.app().Dispatch(catalog.FromTemplate(t, c.app().Now())...)
			fmt.Fprintf(out, "Created %q with %d items\n", s.Current.Name, len(s.Current.Items))
			return nil
		},
	}
}

func (c *cli) moodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mood [MOOD]",
		Short: "List moods, or add a mood's items to the current list",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, m := range catalog.Moods {
					fmt.Fprintf(out, "%s %-18s %s\n", m.Icon, m.Name, m.Description)
				}
				return nil
			}
			name := strings.Join(args, " ")
			m, ok := catalog.MoodByName(name)
			if !ok {
				return fmt.Errorf("unknown mood %q", name)
			}
			cur, err := c.app().Current()
			if err != nil {
				return err
			}
			c.app().Dispatch(catalog.FromMood(m, c.app().Now())...)
			fmt.Fprintf(out, "Added %d items to %q\n", len(m.Items), cur.Name)
			return nil
		},
	}
}

func (c *cli) mealPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meal-plan [MEAL...]",
		Short: "List meals, or create a shopping list for the chosen meals",
		Long: `Without arguments, prints the weekly meal plan. Given meal names, creates
a list holding every ingredient of those meals once.

Example:
  basket meal-plan "Pasta Carbonara" "Pancakes"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, m := range catalog.Meals {
					fmt.Fprintf(out, "%-10s %s: %s\n", m.Day, m.Name, strings.Join(m.Ingredients, ", "))
				}
				return nil
			}
			meals := make([]catalog.Meal, 0, len(args))
			for _, name := range args {
				m, ok := catalog.MealByName(name)
				if !ok {
					return fmt.Errorf("unknown meal %q", name)
				}
				meals = append(meals, m)
			}
			s := c.app().Dispatch(catalog.FromMealPlan(meals, c.app().Now())...)
			fmt.Fprintf(out, "Created %q with %d ingredients\n", s.Current.Name, len(s.Current.Items))
			return nil
		},
	}
}

func (c *cli) suggestCmd() *cobra.Command {
	var add string
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show seasonal and day-of-week suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if add = strings.TrimSpace(add); add != "" {
				if _, err := c.app().Current(); err != nil {
					return err
				}
				c.app().Dispatch(catalog.FromSuggestion(add, c.app().Now())...)
				fmt.Fprintf(out, "Added %s\n", add)
				return nil
			}
			sg := catalog.Suggest(c.app().Now())
			fmt.Fprintf(out, "Seasonal:  %s\n", strings.Join(sg.Seasonal, ", "))
			fmt.Fprintf(out, "For today: %s\n", strings.Join(sg.ForToday, ", "))
			fmt.Fprintln(out, "Often bought together:")
			for _, p := range sg.CommonPairs {
				fmt.Fprintf(out, "  %s -> %s\n", p.Main, strings.Join(p.Suggestions, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&add, "add", "", "add the named suggestion to the current list")
	return cmd
}
