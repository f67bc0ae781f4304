package system

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/anqa_gateway/pkg/cloudtrace"
)

func NewGenIDCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "genid",
		Short: "Generate fresh trace and request identifiers",
		Long: `Prints freshly generated identifiers in the formats the gateway uses on
the wire: a 32-hex Cloud Trace trace ID and a UUID v4 request ID. Useful
for seeding test requests and log searches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < count; i++ {
				fmt.Printf("trace_id:   %s\n", cloudtrace.NewTraceID())
				fmt.Printf("request_id: %s\n", cloudtrace.NewRequestID())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "Number of identifier pairs to generate")

	return cmd
}
