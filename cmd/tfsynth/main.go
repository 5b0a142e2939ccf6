package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"tfsynth/internal/importer"
	"tfsynth/internal/registry"
	"tfsynth/internal/report"
	"tfsynth/internal/schema"
	"tfsynth/internal/terraform"
	"tfsynth/pkg/logging"
)

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "tfsynth",
		Short: "Synthesize Terraform JSON documents from HCL configuration or live AWS resources",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newGenerateCommand(&logLevel))
	rootCmd.AddCommand(newImportCommand(&logLevel))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(level string) logging.Logger {
	logger := logging.NewDefaultLogger()
	logger.SetLevel(logging.ParseLevel(level))
	return logger
}

func newGenerateCommand(logLevel *string) *cobra.Command {
	var configPath string
	var outputFormat string
	var outputPath string
	var skipValidation bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a Terraform JSON document from an HCL configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			if configPath == "" {
				fmt.Println("The --config-path flag is required")
				_ = cmd.Help()
				os.Exit(1)
			}

			logger := newLogger(*logLevel)

			engine, err := terraform.NewSynthesizer()
			if err != nil {
				log.Fatalf("Failed to initialize the synthesizer: %v", err)
			}

			loader := terraform.NewLoaderWithLogger(logger)
			if err := loader.LoadFile(configPath, engine); err != nil {
				logger.Error("%v", err)
				os.Exit(1)
			}

			if !skipValidation {
				reg := registry.NewWithLogger(logger)
				if err := schema.RegisterDefaults(reg); err != nil {
					log.Fatalf("Failed to register resource validators: %v", err)
				}
				if err := reg.Validate(engine.Synthesis()); err != nil {
					logger.Error("%v", err)
					os.Exit(1)
				}
			}

			printer := report.NewDefaultPrinter()
			format := report.ParseOutputFormat(outputFormat)
			if outputPath != "" {
				err = printer.PrintManifestToFile(engine.Synthesis(), format, outputPath)
			} else {
				err = printer.PrintManifest(engine.Synthesis(), format)
			}
			if err != nil {
				logger.Error("%v", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&configPath, "config-path", "", "Path to the HCL configuration file")
	cmd.Flags().StringVar(&outputFormat, "output", "json", "Output format: json or table")
	cmd.Flags().StringVar(&outputPath, "out", "", "Write the rendered document to this file instead of stdout")
	cmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "Skip resource schema validation")
	return cmd
}

func newImportCommand(logLevel *string) *cobra.Command {
	var instanceIDs string
	var resourceName string
	var outputFormat string
	var concurrencyLimit int

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Synthesize aws_instance resources from live EC2 instances",
		Run: func(cmd *cobra.Command, args []string) {
			if instanceIDs == "" {
				fmt.Println("The --instance-ids flag is required")
				_ = cmd.Help()
				os.Exit(1)
			}

			instanceIDSlice := strings.Split(instanceIDs, ",")
			for i, id := range instanceIDSlice {
				instanceIDSlice[i] = strings.TrimSpace(id)
			}

			logger := newLogger(*logLevel)
			ctx := context.Background()

			service, err := importer.NewDefaultService(ctx, importer.Config{
				InstanceIDs:      instanceIDSlice,
				ResourceName:     resourceName,
				ConcurrencyLimit: concurrencyLimit,
			})
			if err != nil {
				log.Fatalf("Failed to initialize the importer: %v", err)
			}

			manifest, results, err := service.Run(ctx)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			var anyError bool
			for _, result := range results {
				if result.Error != nil {
					anyError = true
					logger.Error("instance %s: %v", result.InstanceID, result.Error)
				}
			}

			printer := report.NewDefaultPrinter()
			if err := printer.PrintManifest(manifest, report.ParseOutputFormat(outputFormat)); err != nil {
				logger.Error("%v", err)
				os.Exit(1)
			}

			if anyError {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&instanceIDs, "instance-ids", "", "Comma-separated list of AWS EC2 instance IDs")
	cmd.Flags().StringVar(&resourceName, "resource-name", "", "Resource name to use instead of the Name tag (suffixed per instance when importing several)")
	cmd.Flags().StringVar(&outputFormat, "output", "json", "Output format: json or table")
	cmd.Flags().IntVar(&concurrencyLimit, "concurrency", runtime.NumCPU(), "Maximum number of instances to fetch concurrently")
	return cmd
}
