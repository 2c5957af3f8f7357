package cli

import (
	"os"

	"github.com/alexflint/go-arg"
	"github.com/tatterwing/lootkit/util/osutil"
)

func Parse() Args {
	args := Args{}
	parser := arg.MustParse(&args)
	if len(os.Args) == 1 {
		parser.WriteHelp(os.Stdout)
		osutil.Exit(0)
	}
	return args
}

type Args struct {
	ConfigFile string `arg:"positional" help:"config file to use"`
	Slots      bool   `arg:"--slots" help:"list the recorded snapshot slots and exit"`
}

const AppName = "lootkit"

// without v prefix

var version = "(unknown version)"

func (Args) Version() string {
	return AppName + " " + version
}

func VersionWithVPrefix() string {
	return "v" + version
}
