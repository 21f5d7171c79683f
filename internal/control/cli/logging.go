package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/snippet/internal/potatolog"
)

// redirectLogging points the global logger at the in-memory log (and the log
// file, if one is given), so nothing is written to the terminal while the
// editor owns it.
// The returned function restores the previous logger and shows the memory
// log's warnings and errors on stderr.
func redirectLogging(logOutputFile string, logPretty bool) (restore func(), err error) {
	var logWriter io.Writer = &potatolog.GlobalMemoryLogReaderWriter
	var file *os.File
	if logOutputFile != "" {
		file, err = os.OpenFile(logOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("could not open file '%s' for logging (%w)", logOutputFile, err)
		}
		var fileLogger io.Writer = file
		if logPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	}

	previous := log.Logger
	log.Logger = zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	return func() {
		log.Logger = previous
		if file != nil {
			file.Close()
		}
		err := potatolog.GlobalMemoryLogReaderWriter.Replay(zerolog.ConsoleWriter{Out: os.Stderr}, zerolog.WarnLevel)
		if err != nil {
			log.Warn().Err(err).Msg("could not show session log")
		}
	}, nil
}
