package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/staffledger/grid"
	"github.com/staffledger/grid/backend/terminal"
	"github.com/staffledger/grid/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the grids in the terminal",
	Long: `Browse the grids in the terminal, one tab per grid.

Keys: tab switches grids, / filters, 1-9 sort by a column, arrows and
pgup/pgdn move the selection, c copies the selected row, q quits.
The mouse selects rows, sorts on label clicks and resizes columns.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	book, err := loadBook()
	if err != nil {
		return err
	}

	cw, ch := cfg.Terminal.CellWidth, cfg.Terminal.CellHeight
	ws := &workspace{}
	host := terminal.NewHost(cw, ch,
		terminal.WithNotify(ws.notify),
		terminal.WithHostLogger(logger.L),
	)
	model := terminal.NewModel(host, terminal.WithLogger(logger.L))
	defer model.Close()

	style := terminal.Style(cfg.Style(), cw, ch)
	err = ws.build(book, func(name string) (*grid.Grid, error) {
		return model.AddGrid(name, gridOptions(style)...)
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
