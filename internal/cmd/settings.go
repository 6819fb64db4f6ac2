package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/speechtimer/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"List or change keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`

	out io.Writer `kong:"-"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run() error {
	out := s.out
	if out == nil {
		out = os.Stdout
	}

	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		var valueStr string
		switch v := example[name].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, valueStr)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure speechtimer.")
	fmt.Fprintln(out, "All settings are optional. Timer state and history are never saved.")

	return nil
}
