package cmd

import (
	"io"
	"log"
	"time"

	"github.com/etldemo/edk/usecase/employees"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// CSVMain is wrapped by NewCSVCommand and only exported for testing purposes.
var CSVMain *employees.CSVMain

// NewCSVCommand returns a new cobra command wrapping CSVMain.
func NewCSVCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	CSVMain = employees.NewCSVMain()
	csvCommand := &cobra.Command{
		Use:   "csv",
		Short: "Run the processing job over employee records from CSV files or URLs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = CSVMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := csvCommand.Flags()
	err = commandeer.Flags(flags, CSVMain)
	if err != nil {
		panic(err)
	}
	return csvCommand
}

func init() {
	subcommandFns["csv"] = NewCSVCommand
}
