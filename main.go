package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/plane-tools/go-cmdtree-generator/internal/analyzer"
	"github.com/plane-tools/go-cmdtree-generator/internal/generator"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PlaneRepo    string `json:"plane_repo"`
	OutputPath   string `json:"output_path"`
	OutputFormat string `json:"output_format"`
}

func main() {
	// Pick up PLANE_REPO_PATH from a local .env before flags resolve
	// their defaults.
	_ = godotenv.Load()

	var (
		configPath   string
		planeRepo    string
		outputPath   string
		outputFormat string
	)

	rootCmd := &cobra.Command{
		Use:   "go-cmdtree-generator",
		Short: "Generate the Plane CLI command tree from the Plane API url files",
		Long: `go-cmdtree-generator scans the url registration files of a Plane API
checkout, derives a deduplicated, named hierarchy of resources and
operations, and writes it as a versioned command tree document that the
CLI is generated from.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := Config{
				PlaneRepo:    planeRepo,
				OutputPath:   outputPath,
				OutputFormat: outputFormat,
			}
			if configPath != "" {
				if err := loadConfig(configPath, &config); err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}
			return run(config)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&planeRepo, "plane-repo", os.Getenv("PLANE_REPO_PATH"), "Path to the Plane repo")
	rootCmd.Flags().StringVar(&outputPath, "out", "schemas/command_tree.json", "Output file path")
	rootCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format (json|yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(config Config) error {
	if config.PlaneRepo == "" {
		return fmt.Errorf("--plane-repo or PLANE_REPO_PATH is required")
	}

	urlsDir := filepath.Join(config.PlaneRepo, "apps", "api", "plane", "api", "urls")
	if info, err := os.Stat(urlsDir); err != nil || !info.IsDir() {
		return fmt.Errorf("API urls dir not found: %s", urlsDir)
	}

	endpoints, err := analyzer.New(urlsDir).Analyze()
	if err != nil {
		return fmt.Errorf("failed to analyze url files: %w", err)
	}

	treeGenerator := generator.New(generator.Config{Version: 1, BasePath: "/api/v1"})
	tree := treeGenerator.Generate(endpoints)
	if err := treeGenerator.ValidateTree(tree); err != nil {
		return fmt.Errorf("generated tree is invalid: %w", err)
	}

	if err := writeOutput(tree, config.OutputPath, config.OutputFormat); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Println(config.OutputPath)
	return nil
}

func loadConfig(configPath string, config *Config) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func writeOutput(tree *generator.CommandTree, outputPath, format string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "json":
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(tree); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml":
		encoder := yaml.NewEncoder(file)
		encoder.SetIndent(2)
		if err := encoder.Encode(tree); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}

	return nil
}
