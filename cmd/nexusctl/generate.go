package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nexuscore/internal/domain"
)

var (
	genSub    domain.CompanySubmission
	genOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run every check against one company and print the report",
	Example: `  nexusctl generate --name "AI Farm Ltd." --arr 30000 --runway 6 \
      --team "5 engineers" --claims "We are eco-friendly" -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newReports()
		if err != nil {
			return err
		}
		sub := genSub
		if sub.ID == "" {
			sub.ID = domain.NewSubmissionID()
		}
		report, err := svc.Generate(cmd.Context(), sub)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), report, genOutput)
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genSub.ID, "id", "", "submission id (generated when empty)")
	f.StringVar(&genSub.Name, "name", "", "company name")
	f.StringVar(&genSub.Sector, "sector", domain.Sectors[0], "sector")
	f.Float64Var(&genSub.ARR, "arr", 0, "annual recurring revenue (USD)")
	f.Float64Var(&genSub.Runway, "runway", 0, "runway in months")
	f.StringVar(&genSub.Team, "team", "", "team description")
	f.StringVar(&genSub.Claims, "claims", "", "self-reported claims")
	f.StringVarP(&genOutput, "output", "o", "json", "json | yaml")
}

func writeReport(w io.Writer, r domain.NexusReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
