package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"basket/internal/catalog"
	"basket/internal/model"
	"basket/internal/state"
)

var errInvalidPrice = errors.New("price must be a finite, non-negative number")

type itemFlags struct {
	name     string
	qty      string
	category string
	priority string
	price    float64
	expiry   string
	eco      bool
	note     string
	photo    string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.qty, "qty", "", "quantity, free text")
	cmd.Flags().StringVar(&f.category, "category", "", "category (guessed from the name when empty)")
	cmd.Flags().StringVar(&f.priority, "priority", "", "low|medium|high")
	cmd.Flags().Float64Var(&f.price, "price", 0, "estimated price")
	cmd.Flags().StringVar(&f.expiry, "expiry", "", "expiry date YYYY-MM-DD")
	cmd.Flags().BoolVar(&f.eco, "eco", false, "eco-friendly")
	cmd.Flags().StringVar(&f.note, "note", "", "note")
	cmd.Flags().StringVar(&f.photo, "photo", "", "photo reference")
}

func (c *cli) addCmd() *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an item to the current list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.app().Current(); err != nil {
				return err
			}
			fields := model.ItemFields{
				Name:          strings.TrimSpace(strings.Join(args, " ")),
				Quantity:      f.qty,
				Category:      f.category,
				Priority:      model.ParsePriority(f.priority),
				Note:          f.note,
				Photo:         f.photo,
				IsEcoFriendly: f.eco,
			}
			if fields.Name == "" {
				return fmt.Errorf("item name is empty")
			}
			if cmd.Flags().Changed("price") {
				if !model.ValidAmount(f.price) {
					return errInvalidPrice
				}
				fields.EstimatedPrice = &f.price
			}
			if f.expiry != "" {
				d, err := model.ParseDate(f.expiry)
				if err != nil {
					return fmt.Errorf("expiry: %w", err)
				}
				fields.ExpiryDate = &d
			}

			actions := catalog.Add(fields, c.app().Now())
			s := c.app().Dispatch(actions...)
			added := actions[0].(state.AddItem).Item
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) to %q\n", added.Name, added.Category, s.Current.Name)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var (
		f                                  itemFlags
		clearPrice, clearExpiry, clearNote bool
		clearPhoto                         bool
	)
	cmd := &cobra.Command{
		Use:   "edit ITEM",
		Short: "Change fields of an item in the current list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := c.app().FindItem(args[0])
			if err != nil {
				return err
			}

			var p state.ItemPatch
			changed := cmd.Flags().Changed
			if changed("name") {
				name := strings.TrimSpace(f.name)
				if name == "" {
					return fmt.Errorf("item name is empty")
				}
				p.Name = &name
			}
			if changed("qty") {
				p.Quantity = &f.qty
			}
			if changed("category") {
				cat := model.NormalizeCategory(f.category)
				p.Category = &cat
			}
			if changed("priority") {
				pr := model.ParsePriority(f.priority)
				p.Priority = &pr
			}
			if changed("eco") {
				p.IsEcoFriendly = state.Set(f.eco)
			}
			if changed("note") {
				p.Note = state.Set(f.note)
			}
			if changed("photo") {
				p.Photo = state.Set(f.photo)
			}
			if changed("price") {
				if !model.ValidAmount(f.price) {
					return errInvalidPrice
				}
				p.EstimatedPrice = state.Set(f.price)
			}
			if changed("expiry") {
				d, err := model.ParseDate(f.expiry)
				if err != nil {
					return fmt.Errorf("expiry: %w", err)
				}
				p.ExpiryDate = state.Set(d)
			}
			if clearPrice {
				p.EstimatedPrice = state.Clear[float64]()
			}
			if clearExpiry {
				p.ExpiryDate = state.Clear[model.Date]()
			}
			if clearNote {
				p.Note = state.Clear[string]()
			}
			if clearPhoto {
				p.Photo = state.Clear[string]()
			}

			c.app().Dispatch(state.UpdateItem{ID: it.ID, Patch: p})
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", it.Name)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.name, "name", "", "new name")
	cmd.Flags().BoolVar(&clearPrice, "clear-price", false, "remove the estimated price")
	cmd.Flags().BoolVar(&clearExpiry, "clear-expiry", false, "remove the expiry date")
	cmd.Flags().BoolVar(&clearNote, "clear-note", false, "remove the note")
	cmd.Flags().BoolVar(&clearPhoto, "clear-photo", false, "remove the photo")
	cmd.MarkFlagsMutuallyExclusive("price", "clear-price")
	cmd.MarkFlagsMutuallyExclusive("expiry", "clear-expiry")
	cmd.MarkFlagsMutuallyExclusive("note", "clear-note")
	cmd.MarkFlagsMutuallyExclusive("photo", "clear-photo")
	return cmd
}

func (c *cli) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ITEM",
		Short: "Mark an item bought or not bought",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := c.app().FindItem(args[0])
			if err != nil {
				return err
			}
			c.app().Dispatch(state.ToggleItem{ID: it.ID})
			status := "bought"
			if it.Completed {
				status = "not bought"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s marked %s\n", it.Name, status)
			return nil
		},
	}
}

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ITEM",
		Aliases: []string{"remove"},
		Short:   "Remove an item from the current list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := c.app().FindItem(args[0])
			if err != nil {
				return err
			}
			c.app().Dispatch(state.DeleteItem{ID: it.ID})
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", it.Name)
			return nil
		},
	}
}

func (c *cli) sayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "say TEXT",
		Short: "Add an item from a spoken phrase such as \"buy 2 cartons of milk\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			u, ok := catalog.ParseUtterance(text)
			if !ok {
				return fmt.Errorf("nothing to add in %q", text)
			}
			if _, err := c.app().Current(); err != nil {
				return err
			}
			c.app().Dispatch(catalog.FromUtterance(u, c.app().Now())...)
			if u.Quantity != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s x%s\n", u.Name, u.Quantity)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", u.Name)
			return nil
		},
	}
}
