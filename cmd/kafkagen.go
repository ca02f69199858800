package cmd

import (
	"io"

	"github.com/etldemo/edk/kafkagen"
	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"
)

// KafkagenMain is wrapped by NewKafkagenCommand and only exported for testing purposes.
var KafkagenMain *kafkagen.Main

// NewKafkagenCommand returns a new cobra command wrapping KafkagenMain.
func NewKafkagenCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var err error
	KafkagenMain = kafkagen.NewMain()
	kafkagenCommand := &cobra.Command{
		Use:   "kafkagen",
		Short: "Produce generated employee records to a kafka topic.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return KafkagenMain.Run()
		},
	}
	flags := kafkagenCommand.Flags()
	err = commandeer.Flags(flags, KafkagenMain)
	if err != nil {
		panic(err)
	}
	return kafkagenCommand
}

func init() {
	subcommandFns["kafkagen"] = NewKafkagenCommand
}
