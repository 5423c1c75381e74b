package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/frezix0/todo-api/cmd/internal"
	"github.com/frezix0/todo-api/db"
	envvar "github.com/frezix0/todo-api/internal/envar"
	"github.com/frezix0/todo-api/internal/migrations"
)

var (
	envFile       string
	migrationsDir string
	databaseURL   string
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Walk the todo-api database schema up and down",
	Long: `Applies the SQL migrations shipped with the binary, or the ones in
--migrations, to the configured PostgreSQL database. Progress is recorded in
the schema_version table, one transaction per step.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return envvar.Load(envFile)
	},
}

var upCmd = &cobra.Command{
	Use:   "up [target]",
	Short: "Apply pending migrations, all of them unless a target version is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := int32(-1)

		if len(args) == 1 {
			v, err := parseVersion(args[0])
			if err != nil {
				return err
			}

			target = v
		}

		runner, conn, err := newRunner()
		if err != nil {
			return err
		}
		defer conn.Close()

		applied, err := runner.Up(context.Background(), target)
		for _, m := range applied {
			fmt.Printf("applied  %04d_%s\n", m.Version, m.Name)
		}

		if err != nil {
			return err
		}

		if len(applied) == 0 {
			fmt.Println("nothing to apply")
		}

		return nil
	},
}

var downCmd = &cobra.Command{
	Use:   "down <target>",
	Short: "Revert applied migrations back down to the target version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseVersion(args[0])
		if err != nil {
			return err
		}

		runner, conn, err := newRunner()
		if err != nil {
			return err
		}
		defer conn.Close()

		reverted, err := runner.Down(context.Background(), target)
		for _, m := range reverted {
			fmt.Printf("reverted %04d_%s\n", m.Version, m.Name)
		}

		if err != nil {
			return err
		}

		if len(reverted) == 0 {
			fmt.Println("nothing to revert")
		}

		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current schema version and the state of every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, conn, err := newRunner()
		if err != nil {
			return err
		}
		defer conn.Close()

		current, err := runner.Current(context.Background())
		if err != nil {
			return err
		}

		all, err := loadMigrations()
		if err != nil {
			return err
		}

		fmt.Printf("version %d of %d\n\n", current, len(all))

		for _, m := range all {
			marker := " "
			if m.Version <= current {
				marker = "x"
			}

			suffix := ""
			if !m.Reversible() {
				suffix = " (irreversible)"
			}

			fmt.Printf("[%s] %04d_%s%s\n", marker, m.Version, m.Name, suffix)
		}

		return nil
	},
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create the next migration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := migrationsDir
		if dir == "" {
			dir = filepath.Join("db", "migrations")
		}

		existing, err := migrations.Load(os.DirFS(dir))
		if err != nil {
			return err
		}

		name := strings.ReplaceAll(strings.ToLower(args[0]), " ", "_")
		path := filepath.Join(dir, fmt.Sprintf("%04d_%s.sql", len(existing)+1, name))

		contents := `-- Write the migration here.

---- create above / drop below ----

-- Write the rollback here.
`

		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			return fmt.Errorf("os.WriteFile %w", err)
		}

		fmt.Printf("created %s\n", path)

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Environment Variables filename")
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "migrations", "", "Read migrations from this directory instead of the embedded ones")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Connection string, overrides the DATABASE_* variables")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(newCmd)
}

func parseVersion(arg string) (int32, error) {
	v, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q", arg)
	}

	return int32(v), nil
}

func newRunner() (*migrations.Runner, *sqlx.DB, error) {
	all, err := loadMigrations()
	if err != nil {
		return nil, nil, err
	}

	dsn := databaseURL
	if dsn == "" {
		vault, err := internal.NewVaultProvider()
		if err != nil {
			return nil, nil, fmt.Errorf("internal.NewVaultProvider %w", err)
		}

		dsn = internal.PostgreSQLDSN(envvar.New(vault))
	}

	conn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlx.Connect %w", err)
	}

	return migrations.NewRunner(conn, all), conn, nil
}

func loadMigrations() ([]migrations.Migration, error) {
	if migrationsDir != "" {
		return migrations.Load(os.DirFS(migrationsDir))
	}

	return migrations.Load(db.Migrations())
}
