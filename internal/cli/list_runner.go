package cli

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/dirlist/internal/commands"
	"github.com/temirov/dirlist/internal/output"
	"github.com/temirov/dirlist/internal/tokenizer"
	"github.com/temirov/dirlist/internal/types"
)

// runList lists every requested root, prints the combined output and handles
// persistence, clipboard, token and viewer options.
func runList(standardOutput io.Writer, dependencies Dependencies, options listOptions, paths []string) error {
	if len(paths) == 0 {
		paths = []string{""}
	}
	// A single root is persisted by the lister; several roots are persisted once, combined.
	persistEachRoot := options.save && len(paths) == 1

	results := make([]commands.ListResult, len(paths))
	var group errgroup.Group
	for pathIndex, rootPath := range paths {
		pathIndex, rootPath := pathIndex, rootPath
		group.Go(func() error {
			result, listError := dependencies.Lister.List(commands.ListRequest{
				RootPath:        rootPath,
				DefaultRootPath: options.defaultRoot,
				RawExclusions:   options.exclusions,
				Persist:         persistEachRoot,
				OutputDirectory: options.outputDir,
				SortMode:        options.sortMode,
				MaxDepth:        options.maxDepth,
				DetectCycles:    options.detectCycles,
			})
			if listError != nil {
				return listError
			}
			results[pathIndex] = result
			return nil
		})
	}
	if waitError := group.Wait(); waitError != nil {
		return waitError
	}

	outlineText := combineOutlines(results)
	renderedOutput, renderError := renderResults(options.format, results, outlineText)
	if renderError != nil {
		return renderError
	}
	if writeError := writeOutput(standardOutput, renderedOutput); writeError != nil {
		return writeError
	}

	logger := dependencies.Logger
	if persistEachRoot {
		reportPersistence(logger, results[0].PersistedPath, results[0].PersistenceError)
	} else if options.save {
		persistedPath, persistError := dependencies.Writer.Write(resolveOutputDirectory(options.outputDir), outlineText)
		reportPersistence(logger, persistedPath, persistError)
	}

	if options.tokens.enabled {
		reportTokens(logger, dependencies, options.tokens, renderedOutput)
	}
	if options.copyEnabled {
		if copyError := dependencies.Copier.Copy(renderedOutput); copyError != nil {
			logger.Warn(copyFailedMessage, zap.Error(copyError))
		}
	}
	if options.view {
		return dependencies.Presenter.Present(resultWindowTitle, outlineText)
	}
	return nil
}

func renderResults(format string, results []commands.ListResult, outlineText string) (string, error) {
	switch format {
	case types.FormatJSON:
		return output.RenderJSON(listingsOf(results))
	case types.FormatXML:
		return output.RenderXML(listingsOf(results))
	default:
		return outlineText, nil
	}
}

func combineOutlines(results []commands.ListResult) string {
	var builder strings.Builder
	for _, result := range results {
		builder.WriteString(result.Outline.String())
	}
	return builder.String()
}

func listingsOf(results []commands.ListResult) []types.Listing {
	listings := make([]types.Listing, 0, len(results))
	for _, result := range results {
		listings = append(listings, result.Listing())
	}
	return listings
}

func resolveOutputDirectory(outputDirectory string) string {
	if strings.TrimSpace(outputDirectory) == "" {
		return "."
	}
	return outputDirectory
}

func reportPersistence(logger *zap.Logger, persistedPath string, persistError error) {
	if persistError != nil {
		logger.Error(saveListingFailedMessage, zap.Error(persistError))
		return
	}
	logger.Info(savedListingMessage, zap.String("path", persistedPath))
}

func reportTokens(logger *zap.Logger, dependencies Dependencies, options tokenOptions, renderedOutput string) {
	counter, resolvedModel, counterError := dependencies.NewCounter(tokenizer.Config{Model: options.model})
	if counterError != nil {
		logger.Warn(tokenCountFailedMessage, zap.Error(counterError))
		return
	}
	countResult, countError := tokenizer.CountText(counter, renderedOutput)
	if countError != nil {
		logger.Warn(tokenCountFailedMessage, zap.Error(countError))
		return
	}
	if !countResult.Counted {
		return
	}
	logger.Info(tokenCountMessage, zap.Int("tokens", countResult.Tokens), zap.String("model", resolvedModel))
}
