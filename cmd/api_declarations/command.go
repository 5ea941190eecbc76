package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vphpersson/api_declarations/internal/go_source"
	"github.com/vphpersson/api_declarations/pkg/producers/typescript"
	"github.com/vphpersson/api_declarations/pkg/types/api_definition"
	"go.uber.org/zap"
)

var (
	ErrNoInput           = errors.New("no input; use --definition or --source")
	ErrConflictingInputs = errors.New("--definition and --source are mutually exclusive")
)

type options struct {
	definitionPath string
	sourcePath     string
	outputPath     string
	verbose        bool
}

func loadDefinition(opts *options) (*api_definition.ApiDefinition, error) {
	switch {
	case opts.definitionPath != "" && opts.sourcePath != "":
		return nil, motmedelErrors.NewWithTrace(ErrConflictingInputs)
	case opts.definitionPath != "":
		data, err := os.ReadFile(opts.definitionPath)
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("os read file: %w", err), opts.definitionPath)
		}
		apiDefinition, err := api_definition.Load(data)
		if err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("load: %w", err), opts.definitionPath)
		}
		return apiDefinition, nil
	case opts.sourcePath != "":
		apiDefinition, err := go_source.Collect(opts.sourcePath)
		if err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}
		return apiDefinition, nil
	default:
		return nil, motmedelErrors.NewWithTrace(ErrNoInput)
	}
}

func run(opts *options, stdout io.Writer, logger *zap.Logger) error {
	apiDefinition, err := loadDefinition(opts)
	if err != nil {
		return fmt.Errorf("load definition: %w", err)
	}

	logger.Debug(
		"loaded api definition",
		zap.Int("classes", len(apiDefinition.Classes)),
		zap.Int("globals", len(apiDefinition.Globals)),
	)

	output, err := typescript.Convert(apiDefinition)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if opts.outputPath == "" {
		if _, err := io.WriteString(stdout, output); err != nil {
			return motmedelErrors.NewWithTrace(fmt.Errorf("io write string: %w", err))
		}
		return nil
	}

	if err := os.WriteFile(opts.outputPath, []byte(output), 0o644); err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("os write file: %w", err), opts.outputPath)
	}

	logger.Info(
		"wrote declarations",
		zap.String("path", opts.outputPath),
		zap.Int("classes", len(apiDefinition.Classes)),
		zap.Int("globals", len(apiDefinition.Globals)),
	)

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return config.Build()
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	command := &cobra.Command{
		Use:   "api_declarations",
		Short: "Generate TypeScript declarations from an API definition",
		Long: `Generate a TypeScript declaration file from an API definition.

The definition is read either from a YAML document (--definition) or collected from the
exported types, methods and functions of a Go package directory (--source).

Examples:
  api_declarations --definition api.yaml                 # Write declarations to stdout
  api_declarations --source ./pkg/api -o api.d.ts        # Collect from Go source`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("new logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return run(opts, cmd.OutOrStdout(), logger)
		},
	}

	command.Flags().StringVarP(&opts.definitionPath, "definition", "d", "", "YAML API definition file")
	command.Flags().StringVarP(&opts.sourcePath, "source", "s", "", "Go package directory to collect the API from")
	command.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file (default: stdout)")
	command.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return command
}
