package cmd

import (
	"io"
	"log"
	"time"

	"github.com/etldemo/edk/usecase/employees"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// KafkaMain is wrapped by NewKafkaCommand and only exported for testing purposes.
var KafkaMain *employees.KafkaMain

// NewKafkaCommand returns a new cobra command wrapping KafkaMain.
func NewKafkaCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	KafkaMain = employees.NewKafkaMain()
	kafkaCommand := &cobra.Command{
		Use:   "kafka",
		Short: "Run the processing job over json employee messages from kafka.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err = KafkaMain.Run()
			if err != nil {
				return err
			}
			log.Println("Done: ", time.Since(start))
			return nil
		},
	}
	flags := kafkaCommand.Flags()
	err = commandeer.Flags(flags, KafkaMain)
	if err != nil {
		panic(err)
	}
	return kafkaCommand
}

func init() {
	subcommandFns["kafka"] = NewKafkaCommand
}
