package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nexuscore/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive role-gated terminal interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newReports()
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(tui.New(svc), tea.WithContext(cmd.Context())).Run()
		return err
	},
}
