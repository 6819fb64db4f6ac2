package ui

import (
	"fmt"

	"github.com/renato0307/speechtimer/internal/theme"
	"github.com/renato0307/speechtimer/internal/version"
)

// renderHeader creates the header used across the application.
// It displays the app name with optional version info (in dev mode) and tagline.
// If subtitle is provided, it's rendered below the tagline.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("Speech Timer")
	if devMode {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			version.Version,
			commit,
			version.Date,
			version.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader creates a header for dialogs with a title.
// Only the Dialog wrapper should call this.
func renderDialogHeader(devMode bool, title string) string {
	return renderHeader(devMode, title)
}
