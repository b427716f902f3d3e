package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoren/ritual/internal/cli"
	"github.com/lmoren/ritual/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	if settings.AutoBackupEnabled {
		ctx.PerformAutomaticBackup()
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, settings, now), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
