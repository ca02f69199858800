package cmd

import (
	"io"
	"log"
	"time"

	"github.com/etldemo/edk/usecase/employees"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// S3Main is wrapped by NewS3Command and only exported for testing purposes.
var S3Main *employees.S3Main

// NewS3Command returns a new cobra command wrapping S3Main.
func NewS3Command(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	S3Main = employees.NewS3Main()
	s3Command := &cobra.Command{
		Use:   "s3",
		Short: "Run the processing job over json employee records from an S3 bucket.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = S3Main.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := s3Command.Flags()
	err = commandeer.Flags(flags, S3Main)
	if err != nil {
		panic(err)
	}
	return s3Command
}

func init() {
	subcommandFns["s3"] = NewS3Command
}
