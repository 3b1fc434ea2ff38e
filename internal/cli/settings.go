package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"basket/internal/model"
	"basket/internal/state"
)

func (c *cli) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recently added item names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range c.app().State().SearchHistory {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (c *cli) settingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings [KEY=VALUE...]",
		Short: "Show or change preferences",
		Long: `Without arguments, prints the current preferences. Otherwise each
KEY=VALUE pair is applied, for example:

  basket settings currency=EUR budget=50 darkMode=true
  basket settings dietaryPreferences=vegan,gluten-free`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				patch, err := parseSettings(args)
				if err != nil {
					return err
				}
				c.app().Dispatch(state.UpdateSettings{Patch: patch})
			}
			return writeYAML(cmd.OutOrStdout(), c.app().State().Settings)
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all lists, settings and history to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.app().State()
			doc := snapshot{
				Lists:         s.Lists,
				Settings:      s.Settings,
				SearchHistory: s.SearchHistory,
			}
			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			case "yaml", "yml":
				return writeYAML(cmd.OutOrStdout(), doc)
			default:
				return fmt.Errorf("unsupported format %q (use json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|yaml")
	return cmd
}

type snapshot struct {
	Lists         []model.List   `json:"lists" yaml:"lists"`
	Settings      model.Settings `json:"settings" yaml:"settings"`
	SearchHistory []string       `json:"searchHistory" yaml:"searchHistory"`
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// parseSettings turns KEY=VALUE pairs into a patch. Keys match the stored
// field names case-insensitively.
func parseSettings(args []string) (state.SettingsPatch, error) {
	var p state.SettingsPatch
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return p, fmt.Errorf("expected KEY=VALUE, got %q", arg)
		}
		value = strings.TrimSpace(value)

		var err error
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "darkmode":
			p.DarkMode, err = parseBool(value)
		case "storemode":
			p.StoreMode, err = parseBool(value)
		case "notifications":
			p.Notifications, err = parseBool(value)
		case "voiceenabled", "voice":
			p.VoiceEnabled, err = parseBool(value)
		case "sustainabilitymode":
			p.SustainabilityMode, err = parseBool(value)
		case "gamificationenabled", "gamification":
			p.GamificationEnabled, err = parseBool(value)
		case "defaultcategory":
			cat := model.NormalizeCategory(value)
			p.DefaultCategory = &cat
		case "currency":
			cur, known := model.ParseCurrency(value)
			if !known {
				err = fmt.Errorf("unsupported currency %q", value)
			}
			p.Currency = &cur
		case "budget":
			var b float64
			b, err = strconv.ParseFloat(value, 64)
			if err == nil && !model.ValidAmount(b) {
				err = fmt.Errorf("budget must be a finite, non-negative number")
			}
			p.Budget = &b
		case "dietarypreferences", "diet":
			prefs := []string{}
			for _, v := range strings.Split(value, ",") {
				if v = strings.TrimSpace(v); v != "" {
					prefs = append(prefs, v)
				}
			}
			p.DietaryPreferences = &prefs
		default:
			err = fmt.Errorf("unknown setting")
		}
		if err != nil {
			return state.SettingsPatch{}, fmt.Errorf("setting %q: %w", key, err)
		}
	}
	return p, nil
}

func parseBool(v string) (*bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
