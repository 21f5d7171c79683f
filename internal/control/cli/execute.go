package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/snippet/internal/clipboard"
	"github.com/ja-he/snippet/internal/config"
	"github.com/ja-he/snippet/internal/control"
	"github.com/ja-he/snippet/internal/model"
	"github.com/ja-he/snippet/internal/storage"
	"github.com/ja-he/snippet/internal/storage/providers"
	"github.com/ja-he/snippet/internal/styling"
)

// Execute runs the program for the parsed options and any positional
// arguments go-flags could not assign.
func Execute(opts CommandLineOpts, extraArgs []string) error {
	if opts.Version {
		showVersion(os.Stdout)
		return nil
	}
	if len(extraArgs) > 0 {
		return ErrTooManyArguments
	}

	envData := control.EnvDataFromEnvironment()

	// read config from file
	yamlData, err := os.ReadFile(envData.ConfigPath())
	if err != nil {
		log.Debug().Err(err).Str("file", envData.ConfigPath()).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(yamlData)
	if err != nil {
		return fmt.Errorf("can't parse config data (%w)", err)
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		return fmt.Errorf("can't use configured stylesheet (%w)", err)
	}

	catalog, err := loadCatalog(opts.Catalog, configData, envData)
	if err != nil {
		return err
	}

	if !clipboard.Supported() {
		log.Warn().Msg("no clipboard utility found, copying will fail")
	}

	app := &App{
		Out:        os.Stdout,
		Catalog:    catalog,
		Config:     configData,
		Stylesheet: *stylesheet,
		Clipboard:  clipboard.System{},
		Terminal: func() (SessionTerminal, error) {
			if opts.Fullscreen {
				return &screenTerminal{headerStyle: stylesheet.Header}, nil
			}
			return newInlineTerminal(os.Stdin, os.Stdout), nil
		},
	}
	if opts.Interactive {
		app.Picker = surveyPicker{}
	}

	restoreLogging, err := redirectLogging(opts.LogOutputFile, opts.LogPretty)
	if err != nil {
		return err
	}
	defer restoreLogging()

	return app.Run(opts.Args.Category, opts.Args.Snippet)
}

// catalogPath determines the catalog file: the one given on the command line,
// else the configured one (relative to the snippet home), else the first
// catalog file found in the snippet home, else 'snippets.xml' in the working
// directory.
func catalogPath(flagPath string, configData config.Config, envData control.EnvData) string {
	switch {
	case flagPath != "":
		return flagPath
	case configData.Catalog != "":
		if filepath.IsAbs(configData.Catalog) {
			return configData.Catalog
		}
		return filepath.Join(envData.BaseDirPath, configData.Catalog)
	}

	path, err := providers.FindCatalogFile(envData.BaseDirPath)
	if errors.Is(err, providers.ErrNoCatalog) {
		return "snippets.xml"
	}
	return path
}

func loadCatalog(flagPath string, configData config.Config, envData control.EnvData) (*model.Catalog, error) {
	path := catalogPath(flagPath, configData, envData)
	log.Debug().Str("file", path).Msg("loading catalog")

	var provider storage.CatalogProvider = providers.NewFileCatalogProvider(path)
	catalog, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("can't load snippets (%w)", err)
	}
	return catalog, nil
}
