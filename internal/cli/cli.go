// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dirlist/internal/commands"
	"github.com/temirov/dirlist/internal/config"
	"github.com/temirov/dirlist/internal/services/clipboard"
	"github.com/temirov/dirlist/internal/services/persistence"
	"github.com/temirov/dirlist/internal/services/viewer"
	"github.com/temirov/dirlist/internal/tokenizer"
	"github.com/temirov/dirlist/internal/types"
	"github.com/temirov/dirlist/internal/utils"
)

const (
	exclusionFlagName    = "exclude"
	exclusionShorthand   = "e"
	saveFlagName         = "save"
	outputDirFlagName    = "output-dir"
	formatFlagName       = "format"
	sortFlagName         = "sort"
	maxDepthFlagName     = "max-depth"
	detectCyclesFlagName = "detect-cycles"
	copyFlagName         = "copy"
	viewFlagName         = "view"
	tokensFlagName       = "tokens"
	modelFlagName        = "model"
	configFlagName       = "config"
	globalFlagName       = "global"
	forceFlagName        = "force"
	versionFlagName      = "version"
	versionTemplate      = "dirlist version: %s\n"
	rootUse              = "dirlist"
	rootShortDescription = "dirlist command line interface"
	rootLongDescription  = `dirlist renders a directory tree as an indented text outline.
Use list to print the outline, --save to write it to ` + types.OutputFileName + `, and --version to print the application version.`
	listUse                   = types.CommandList + " [paths...]"
	listAlias                 = "l"
	listShortDescription      = "render a directory outline (" + listAlias + ")"
	initUse                   = types.CommandInit
	initShortDescription      = "write a default configuration file"
	defaultTokenizerModelName = "gpt-4o"
	resultWindowTitle         = "Directory Listing Result"

	// listLongDescription provides detailed help for the list command.
	listLongDescription = `Render the directory outline of one or more paths.
Names given with --exclude are skipped at every level together with their subtrees.
Without --exclude the names .git, node_modules, vendor, .idea and .vsc are skipped.
Use --format to select raw, json, or xml output.`
	// listUsageExample demonstrates list command usage.
	listUsageExample = `  # Outline the current directory and save it to ` + types.OutputFileName + `
  dirlist list --save

  # Skip build output and sort directories first
  dirlist list -e build,dist --sort dirs-first ./project`

	exclusionFlagDescription    = "comma separated names to exclude (default .git,node_modules,vendor,.idea,.vsc)"
	saveFlagDescription         = "write the outline to " + types.OutputFileName
	outputDirFlagDescription    = "directory receiving " + types.OutputFileName + " (default working directory)"
	formatFlagDescription       = "output format: raw, json, or xml"
	sortFlagDescription         = "entry order: none (filesystem order), name, or dirs-first"
	maxDepthFlagDescription     = "maximum entry depth to list, 0 for unlimited"
	detectCyclesFlagDescription = "do not descend into a directory that is one of its own ancestors"
	copyFlagDescription         = "copy the output to the system clipboard"
	viewFlagDescription         = "show the outline in an interactive result window"
	tokensFlagDescription       = "report the token count of the output"
	modelFlagDescription        = "tokenizer model to use for token counting"
	configFlagDescription       = "path to a configuration file"
	globalFlagDescription       = "write the global configuration instead of the local one"
	forceFlagDescription        = "overwrite an existing configuration file"
	versionFlagDescription      = "display application version"

	invalidFormatMessage         = "Invalid format value '%s'"
	invalidSortMessage           = "Invalid sort value '%s'"
	savedListingMessage          = "Directory listing completed and saved"
	saveListingFailedMessage     = "Error saving directory listing"
	copyFailedMessage            = "Failed to copy output to clipboard"
	tokenCountMessage            = "Output token estimate"
	tokenCountFailedMessage      = "Failed to count output tokens"
	configurationWrittenTemplate = "Configuration written to %s\n"
)

// Dependencies holds the collaborators used by the commands.
type Dependencies struct {
	Logger     *zap.Logger
	Lister     *commands.Lister
	Writer     persistence.Writer
	Copier     clipboard.Copier
	Presenter  viewer.Presenter
	NewCounter func(tokenizer.Config) (tokenizer.Counter, string, error)
}

// DefaultDependencies wires the production services around logger.
func DefaultDependencies(logger *zap.Logger) Dependencies {
	writer := persistence.NewService()
	return Dependencies{
		Logger:     logger,
		Lister:     commands.NewLister(writer),
		Writer:     writer,
		Copier:     clipboard.NewService(),
		Presenter:  viewer.NewService(),
		NewCounter: tokenizer.NewCounter,
	}
}

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// isSupportedSortMode reports whether the provided sort mode is recognized.
func isSupportedSortMode(sortMode string) bool {
	switch sortMode {
	case types.SortNone, types.SortName, types.SortDirsFirst:
		return true
	default:
		return false
	}
}

// Execute runs the dirlist application.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(DefaultDependencies(logger))
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies Dependencies) *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createListCommand(dependencies),
		createInitCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// tokenOptions stores configuration for token counting flags.
type tokenOptions struct {
	enabled bool
	model   string
}

// listOptions stores the resolved configuration of one list invocation.
type listOptions struct {
	exclusions   []string
	save         bool
	outputDir    string
	format       string
	sortMode     string
	maxDepth     int
	detectCycles bool
	copyEnabled  bool
	view         bool
	tokens       tokenOptions
	configPath   string
	defaultRoot  string
}

// createListCommand returns the list subcommand.
func createListCommand(dependencies Dependencies) *cobra.Command {
	var options listOptions

	listCommand := &cobra.Command{
		Use:     listUse,
		Aliases: []string{listAlias},
		Short:   listShortDescription,
		Long:    listLongDescription,
		Example: listUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configPath})
			if loadError != nil {
				return loadError
			}
			applyListConfiguration(command, &options, configuration.List)
			options.format = strings.ToLower(options.format)
			if !isSupportedFormat(options.format) {
				return fmt.Errorf(invalidFormatMessage, options.format)
			}
			options.sortMode = strings.ToLower(options.sortMode)
			if !isSupportedSortMode(options.sortMode) {
				return fmt.Errorf(invalidSortMessage, options.sortMode)
			}
			return runList(command.OutOrStdout(), dependencies, options, arguments)
		},
	}

	flags := listCommand.Flags()
	flags.StringArrayVarP(&options.exclusions, exclusionFlagName, exclusionShorthand, nil, exclusionFlagDescription)
	registerBooleanFlag(flags, &options.save, saveFlagName, false, saveFlagDescription)
	flags.StringVar(&options.outputDir, outputDirFlagName, "", outputDirFlagDescription)
	flags.StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	flags.StringVar(&options.sortMode, sortFlagName, types.SortNone, sortFlagDescription)
	flags.IntVar(&options.maxDepth, maxDepthFlagName, 0, maxDepthFlagDescription)
	registerBooleanFlag(flags, &options.detectCycles, detectCyclesFlagName, false, detectCyclesFlagDescription)
	registerBooleanFlag(flags, &options.copyEnabled, copyFlagName, false, copyFlagDescription)
	registerBooleanFlag(flags, &options.view, viewFlagName, false, viewFlagDescription)
	registerBooleanFlag(flags, &options.tokens.enabled, tokensFlagName, false, tokensFlagDescription)
	flags.StringVar(&options.tokens.model, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	flags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	return listCommand
}

// applyListConfiguration fills options that were not set on the command line from configuration.
func applyListConfiguration(command *cobra.Command, options *listOptions, configuration config.ListConfiguration) {
	flags := command.Flags()
	options.defaultRoot = configuration.Root
	if !flags.Changed(exclusionFlagName) && len(configuration.Exclude) > 0 {
		options.exclusions = append([]string{}, configuration.Exclude...)
	}
	if !flags.Changed(saveFlagName) && configuration.Save != nil {
		options.save = *configuration.Save
	}
	if !flags.Changed(outputDirFlagName) && configuration.OutputDir != "" {
		options.outputDir = configuration.OutputDir
	}
	if !flags.Changed(formatFlagName) && configuration.Format != "" {
		options.format = configuration.Format
	}
	if !flags.Changed(sortFlagName) && configuration.Sort != "" {
		options.sortMode = configuration.Sort
	}
	if !flags.Changed(maxDepthFlagName) && configuration.MaxDepth != nil {
		options.maxDepth = *configuration.MaxDepth
	}
	if !flags.Changed(detectCyclesFlagName) && configuration.DetectCycles != nil {
		options.detectCycles = *configuration.DetectCycles
	}
	if !flags.Changed(copyFlagName) && configuration.Clipboard != nil {
		options.copyEnabled = *configuration.Clipboard
	}
	if !flags.Changed(tokensFlagName) && configuration.Tokens.Enabled != nil {
		options.tokens.enabled = *configuration.Tokens.Enabled
	}
	if !flags.Changed(modelFlagName) && configuration.Tokens.Model != "" {
		options.tokens.model = configuration.Tokens.Model
	}
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), configurationWrittenTemplate, writtenPath)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &global, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// writeOutput prints rendered output followed by exactly one trailing newline.
func writeOutput(writer io.Writer, renderedOutput string) error {
	if !strings.HasSuffix(renderedOutput, "\n") {
		renderedOutput += "\n"
	}
	_, writeError := io.WriteString(writer, renderedOutput)
	return writeError
}
