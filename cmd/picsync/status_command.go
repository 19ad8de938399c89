package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"picsync/internal/preflight"
)

func newStatusCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [directory...]",
		Short: "Report environment readiness",
		Long: `Check that exiftool is available and that the configured output root and
any given input directories are accessible, including free space on the
output filesystem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.Run(cfg, args)

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, res := range results {
				status := "ok"
				if !res.Passed {
					status = "FAIL"
					failed++
				}
				rows = append(rows, []string{res.Name, status, res.Detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"check", "status", "detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
