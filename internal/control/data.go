// Package control ties parsing, editing and the clipboard together into
// snippet filling sessions.
package control

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvData represents the environment data.
type EnvData struct {
	// BaseDirPath is the directory holding the config and catalog files.
	BaseDirPath string
}

// EnvDataFromEnvironment determines the environment data from the process
// environment: the base directory is '${SNIPPET_HOME}' if set, otherwise
// '${HOME}/.config/snippet'.
func EnvDataFromEnvironment() EnvData {
	var envData EnvData

	snippetHome := os.Getenv("SNIPPET_HOME")
	if snippetHome == "" {
		envData.BaseDirPath = filepath.Join(os.Getenv("HOME"), ".config", "snippet")
	} else {
		envData.BaseDirPath = strings.TrimRight(snippetHome, "/")
	}

	return envData
}

// ConfigPath returns the path of the config file.
func (e EnvData) ConfigPath() string {
	return filepath.Join(e.BaseDirPath, "config.yaml")
}
