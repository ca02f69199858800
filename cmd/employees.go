package cmd

import (
	"io"
	"log"
	"time"

	"github.com/etldemo/edk/usecase/employees"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// EmployeesMain is wrapped by NewEmployeesCommand and only exported for testing purposes.
var EmployeesMain *employees.Main

// NewEmployeesCommand returns a new cobra command wrapping EmployeesMain.
func NewEmployeesCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	EmployeesMain = employees.NewMain()
	employeesCommand := &cobra.Command{
		Use:   "employees",
		Short: "Generate fake employee data and run the processing job over it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = EmployeesMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := employeesCommand.Flags()
	err = commandeer.Flags(flags, EmployeesMain)
	if err != nil {
		panic(err)
	}
	return employeesCommand
}

func init() {
	subcommandFns["employees"] = NewEmployeesCommand
}
