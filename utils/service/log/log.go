package log

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
)

// SetupDefaults configures the root logger with a terminal handler at info
// level. Binaries call this before anything else so startup failures are
// formatted consistently.
func SetupDefaults() {
	SetupWithLevel(log.LvlInfo)
}

// SetupWithLevel configures the root logger at the given level.
func SetupWithLevel(lvl log.Lvl) {
	useColor := isatty.IsTerminal(os.Stdout.Fd())
	log.Root().SetHandler(
		log.LvlFilterHandler(lvl, log.StreamHandler(os.Stdout, log.TerminalFormat(useColor))),
	)
}

// LevelFromString parses a level name, defaulting to info on unknown input.
func LevelFromString(s string) log.Lvl {
	lvl, err := log.LvlFromString(s)
	if err != nil {
		return log.LvlInfo
	}
	return lvl
}
