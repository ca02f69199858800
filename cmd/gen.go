package cmd

import (
	"io"

	"github.com/etldemo/edk/usecase/gen"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// GenMain is wrapped by NewGenCommand and only exported for testing purposes.
var GenMain *gen.Main

// NewGenCommand returns a new cobra command wrapping GenMain.
func NewGenCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	GenMain = gen.NewMain()
	genCommand := &cobra.Command{
		Use:   "gen",
		Short: "Print generated employee records as json lines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			GenMain.SetOutput(stdout)
			return GenMain.Run()
		},
	}
	flags := genCommand.Flags()
	err = commandeer.Flags(flags, GenMain)
	if err != nil {
		panic(err)
	}
	return genCommand
}

func init() {
	subcommandFns["gen"] = NewGenCommand
}
