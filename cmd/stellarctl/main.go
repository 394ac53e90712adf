// stellarctl is the operational companion to the server: offline compatibility
// evaluation and database migrations.
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"stellar/internal/ashtakoota"
	"stellar/internal/domain"
	"stellar/migrations"
)

func main() {
	root := &cobra.Command{
		Use:           "stellarctl",
		Short:         "Stellar compatibility service tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(evaluateCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func evaluateCmd() *cobra.Command {
	var (
		a, b domain.BirthProfile
		kind string
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute an ashtakoota verdict from raw classifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := ashtakoota.NewEngine().Evaluate(a, b, domain.ReportKind(kind))
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().IntVar(&a.Sign, "a-sign", 0, "first profile moon sign (1-12)")
	cmd.Flags().IntVar(&a.Asterism, "a-asterism", 0, "first profile asterism (1-27)")
	cmd.Flags().IntVar(&a.Subdivision, "a-pada", 1, "first profile pada (1-4)")
	cmd.Flags().StringVar((*string)(&a.Gender), "a-gender", "", "first profile gender (male|female|other)")
	cmd.Flags().IntVar(&b.Sign, "b-sign", 0, "second profile moon sign (1-12)")
	cmd.Flags().IntVar(&b.Asterism, "b-asterism", 0, "second profile asterism (1-27)")
	cmd.Flags().IntVar(&b.Subdivision, "b-pada", 1, "second profile pada (1-4)")
	cmd.Flags().StringVar((*string)(&b.Gender), "b-gender", "", "second profile gender (male|female|other)")
	cmd.Flags().StringVar(&kind, "kind", string(domain.ReportRomantic), "report kind (romantic|friendship)")
	return cmd
}

func migrateCmd() *cobra.Command {
	var databaseURL string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}
			db, err := sql.Open("pgx", databaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			goose.SetBaseFS(migrations.FS)
			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}
			return goose.Up(db, ".")
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (defaults to DATABASE_URL)")
	return cmd
}
