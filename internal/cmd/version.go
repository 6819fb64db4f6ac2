package cmd

import (
	"fmt"

	"github.com/renato0307/speechtimer/internal/version"
)

// VersionInfoCmd prints build information
type VersionInfoCmd struct{}

// Run prints the version line
func (v *VersionInfoCmd) Run() error {
	fmt.Println(version.Info())
	return nil
}
