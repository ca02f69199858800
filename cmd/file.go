package cmd

import (
	"io"
	"log"
	"time"

	"github.com/etldemo/edk/usecase/employees"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// FileMain is wrapped by NewFileCommand and only exported for testing purposes.
var FileMain *employees.FileMain

// NewFileCommand returns a new cobra command wrapping FileMain.
func NewFileCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	FileMain = employees.NewFileMain()
	fileCommand := &cobra.Command{
		Use:   "file",
		Short: "Run the processing job over json employee records from a file or directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = FileMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := fileCommand.Flags()
	err = commandeer.Flags(flags, FileMain)
	if err != nil {
		panic(err)
	}
	return fileCommand
}

func init() {
	subcommandFns["file"] = NewFileCommand
}
