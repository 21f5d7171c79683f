package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/snippet/internal/clipboard"
	"github.com/ja-he/snippet/internal/config"
	"github.com/ja-he/snippet/internal/control"
	"github.com/ja-he/snippet/internal/control/edit"
	"github.com/ja-he/snippet/internal/model"
	"github.com/ja-he/snippet/internal/styling"
)

var (
	// ErrNoSuchCategory is returned for a category missing from the catalog.
	ErrNoSuchCategory = errors.New("no such category")
	// ErrNoSuchSnippet is returned for a snippet missing from its category.
	ErrNoSuchSnippet = errors.New("no such snippet")
)

// App lists the catalog's contents or fills in one of its snippets, writing
// its messages to Out.
type App struct {
	Out        io.Writer
	Catalog    *model.Catalog
	Config     config.Config
	Stylesheet styling.Stylesheet
	Clipboard  clipboard.Clipboard

	// Picker, if set, is asked for the category or snippet when not given.
	// Otherwise the available choices are listed.
	Picker Picker

	// Terminal sets up the terminal a snippet is edited on.
	Terminal func() (SessionTerminal, error)
}

// Run acts on the given (possibly empty) category and snippet names.
func (a *App) Run(categoryName, snippetName string) error {
	if categoryName == "" {
		if a.Picker == nil {
			a.listCategories()
			return nil
		}
		name, err := a.Picker.Pick("Category:", a.Catalog.CategoryNames())
		if errors.Is(err, ErrPickAborted) {
			fmt.Fprintln(a.Out, "Exiting...")
			return nil
		} else if err != nil {
			return err
		}
		categoryName = name
	}

	category, ok := a.Catalog.Category(categoryName)
	if !ok {
		return fmt.Errorf("%w: %s, run \"snippet\" without arguments to list categories", ErrNoSuchCategory, categoryName)
	}

	if snippetName == "" {
		if a.Picker == nil {
			a.listSnippets(category)
			return nil
		}
		name, err := a.Picker.Pick("Snippet:", category.SnippetNames())
		if errors.Is(err, ErrPickAborted) {
			fmt.Fprintln(a.Out, "Exiting...")
			return nil
		} else if err != nil {
			return err
		}
		snippetName = name
	}

	snippet, ok := category.Snippet(snippetName)
	if !ok {
		return fmt.Errorf("%w: %s, run \"snippet %s\" to list snippets", ErrNoSuchSnippet, snippetName, category.Name)
	}

	return a.fill(snippet)
}

func (a *App) listCategories() {
	fmt.Fprintln(a.Out, "Snippet categories:")
	for _, name := range a.Catalog.CategoryNames() {
		fmt.Fprintf(a.Out, " * %s\n", name)
	}
}

func (a *App) listSnippets(category *model.Category) {
	fmt.Fprintf(a.Out, "Snippets in %s:\n", category.Name)
	for _, name := range category.SnippetNames() {
		fmt.Fprintf(a.Out, " * %s\n", name)
	}
}

func (a *App) fill(snippet *model.Snippet) error {
	template := snippet.Text
	if a.Config.TrimEnabled() {
		template = strings.TrimSpace(template)
	}

	term, err := a.Terminal()
	if err != nil {
		return err
	}

	session, err := control.NewSession(template, term, a.Clipboard,
		edit.WithPrompt(a.Config.PromptOrEmpty()),
		edit.WithStylesheet(a.Stylesheet),
		edit.WithBindings(a.Config.Keys),
	)
	if err != nil {
		return fmt.Errorf("could not prepare snippet '%s' (%w)", snippet.Name, err)
	}

	if err := term.Begin(session.HelpLine()); err != nil {
		return err
	}
	log.Debug().Str("snippet", snippet.Name).Msg("editing snippet")
	result, err := session.Run()
	if endErr := term.End(); endErr != nil && err == nil {
		err = endErr
	}
	if err != nil {
		return err
	}

	switch result.Outcome {
	case edit.Confirmed:
		fmt.Fprintf(a.Out, "Copied %s into clipboard\n", result.Text)
	case edit.Cancelled:
		fmt.Fprintln(a.Out, "Exiting...")
	}
	return nil
}
