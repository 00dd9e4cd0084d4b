package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lcb/internal/builders"
	"lcb/internal/buildtype"
	"lcb/internal/codepath"
	"lcb/internal/codestructure"
	"lcb/internal/database"
	"lcb/internal/schema"
	"lcb/internal/stub"
	"lcb/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var buildCmd = &cobra.Command{
	Use:   "build [entity]",
	Short: "Generate Laravel files for a table",
	Long: `Generate the Laravel files for one table, or for every table with --all.

The entity defaults to the singular of the table name and the table defaults
to the plural snake case of the entity. Build types: model, add_action,
edit_action, request, controller, route, form, dto.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("database-url", "d", "", "Database connection URL")
	buildCmd.Flags().String("env-file", ".env", "Laravel .env file used when no database URL is given")
	buildCmd.Flags().StringP("table", "t", "", "Table to read columns from")
	buildCmd.Flags().StringP("schema-file", "s", "", "YAML column file used instead of a database")
	buildCmd.Flags().BoolP("all", "a", false, "Generate for every table in the database")
	buildCmd.Flags().StringSliceP("exclude-tables", "e", []string{}, "Tables to skip with --all")
	buildCmd.Flags().StringSliceP("include-tables", "i", []string{}, "Only these tables with --all (if specified)")
	buildCmd.Flags().StringP("base-path", "b", ".", "Laravel project root the files are written to")
	buildCmd.Flags().StringSlice("only", []string{}, "Build types to generate (default all)")
	buildCmd.Flags().String("stubs", "", "Directory with custom stubs (missing stubs fall back to the built-in ones)")

	viper.BindPFlag("database.url", buildCmd.Flags().Lookup("database-url"))
	viper.BindPFlag("database.env_file", buildCmd.Flags().Lookup("env-file"))
	viper.BindPFlag("schema.table", buildCmd.Flags().Lookup("table"))
	viper.BindPFlag("schema.file", buildCmd.Flags().Lookup("schema-file"))
	viper.BindPFlag("schema.all", buildCmd.Flags().Lookup("all"))
	viper.BindPFlag("schema.exclude_tables", buildCmd.Flags().Lookup("exclude-tables"))
	viper.BindPFlag("schema.include_tables", buildCmd.Flags().Lookup("include-tables"))
	viper.BindPFlag("output.base_path", buildCmd.Flags().Lookup("base-path"))
	viper.BindPFlag("output.builders", buildCmd.Flags().Lookup("only"))
	viper.BindPFlag("stubs.dir", buildCmd.Flags().Lookup("stubs"))
}

func runBuild(cmd *cobra.Command, args []string) error {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(args) > 0 {
		cfg.Schema.Name = args[0]
	}

	types, err := buildtype.ParseList(cfg.Output.Builders)
	if err != nil {
		return err
	}

	tables, err := loadTables(cfg)
	if err != nil {
		return err
	}

	basePath, err := filepath.Abs(cfg.Output.BasePath)
	if err != nil {
		return fmt.Errorf("failed to resolve base path: %w", err)
	}
	output := afero.NewBasePathFs(afero.NewOsFs(), basePath)
	stubs := stub.Sources(cfg.Stubs.Dir)

	heading := color.New(color.FgCyan, color.Bold)
	created := color.New(color.FgGreen)

	files := 0
	var routes []string
	for _, table := range tables {
		entity := cfg.Schema.Name
		if cfg.Schema.All {
			entity = ""
		}

		cs := codestructure.FromTable(table, entity)
		cp := codepath.New(cs.Entity(), cfg.Output)
		factory := builders.NewFactory(cs, cp, stubs, output, logger)

		heading.Printf("%s (table %s, %d columns)\n", cs.Entity().UcFirstSingular(), table.Name, len(cs.Columns()))

		for _, t := range types {
			path, err := factory.Call(string(t), t.StubName())
			if err != nil {
				return fmt.Errorf("failed to build %s for %s: %w", t, table.Name, err)
			}
			created.Printf("  ✓ %s\n", path)
			files++

			if t == buildtype.Route {
				routes = append(routes, path)
			}
		}
	}

	fmt.Printf("\nGenerated %d files in %s\n", files, basePath)

	if len(routes) > 0 {
		hint := color.New(color.FgYellow)
		hint.Println("\n" + routeHint(routes))
	}

	return nil
}

// routeHint tells the user how to load generated route files, which Laravel
// only picks up from routes/web.php.
func routeHint(paths []string) string {
	var b strings.Builder
	b.WriteString("Laravel does not load these route files on its own. Add to routes/web.php:")
	for _, p := range paths {
		p = filepath.ToSlash(p)
		if name, ok := strings.CutPrefix(p, "routes/"); ok {
			fmt.Fprintf(&b, "\n  require __DIR__.'/%s';", name)
		} else {
			fmt.Fprintf(&b, "\n  require base_path('%s');", p)
		}
	}
	return b.String()
}

func loadTables(cfg config.Config) ([]*schema.Table, error) {
	if cfg.Schema.File != "" {
		table, err := schema.LoadTableFile(cfg.Schema.File)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded column file", "path", cfg.Schema.File, "table", table.Name)
		return []*schema.Table{table}, nil
	}

	databaseURL, err := resolveDatabaseURL(cfg.Database)
	if err != nil {
		return nil, err
	}

	connector, err := database.NewConnector(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connector: %w", err)
	}
	defer connector.Close()

	logger.Debug("connected", "driver", connector.Driver())

	if cfg.Schema.All {
		s, err := connector.ExtractSchema(cfg.Schema)
		if err != nil {
			return nil, fmt.Errorf("failed to extract schema: %w", err)
		}
		if len(s.Tables) == 0 {
			return nil, errors.New("no tables found")
		}

		tables := make([]*schema.Table, len(s.Tables))
		for i := range s.Tables {
			tables[i] = &s.Tables[i]
		}
		return tables, nil
	}

	tableName := cfg.Schema.Table
	if tableName == "" {
		if cfg.Schema.Name == "" {
			return nil, errors.New("an entity name or --table is required")
		}
		tableName = codestructure.NewNameStr(cfg.Schema.Name).PluralSnake()
	}

	table, err := connector.ExtractTable(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract table: %w", err)
	}

	return []*schema.Table{table}, nil
}

func resolveDatabaseURL(cfg config.DatabaseConfig) (string, error) {
	if cfg.URL != "" {
		return cfg.URL, nil
	}

	if cfg.EnvFile != "" {
		if _, err := os.Stat(cfg.EnvFile); err == nil {
			logger.Debug("reading database settings", "env_file", cfg.EnvFile)
			return config.DatabaseURLFromEnvFile(cfg.EnvFile)
		}
	}

	return "", errors.New("no database: pass --database-url, --env-file or --schema-file")
}
