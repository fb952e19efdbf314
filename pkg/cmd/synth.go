package cmd

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/goldentick/goldentick/pkg/verify"
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "dump a synthetic sample stream as csv, for building test fixtures",

	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}

		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"Date", "Value"}); err != nil {
			return err
		}

		stream := verify.Generate(count, nil)
		for {
			sample, ok := stream.Next()
			if !ok {
				break
			}

			record := []string{
				sample.Time.Format(time.RFC3339),
				strconv.FormatFloat(sample.Value, 'f', -1, 64),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}

		w.Flush()
		return w.Error()
	},
}

func init() {
	synthCmd.Flags().Int("count", 10, "number of samples")
	RootCmd.AddCommand(synthCmd)
}
