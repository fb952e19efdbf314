package cmd

import (
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goldentick/goldentick/pkg/config"
	"github.com/goldentick/goldentick/pkg/csvsource"
	"github.com/goldentick/goldentick/pkg/indicator"
	"github.com/goldentick/goldentick/pkg/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "replay reference datasets through indicators and check the recorded values",

	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		var jobs []config.Job
		if configFile != "" {
			conf, err := config.Load(configFile)
			if err != nil {
				return err
			}
			jobs = conf.Jobs
		} else {
			job, err := jobFromFlags(cmd)
			if err != nil {
				return err
			}
			jobs = []config.Job{*job}
		}

		for i := range jobs {
			if err := runJob(&jobs[i]); err != nil {
				color.Red("FAIL %s", jobs[i].Name)
				return err
			}
			color.Green("PASS %s", jobs[i].Name)
		}

		return nil
	},
}

func init() {
	verifyCmd.Flags().String("config", "", "yaml file with verification jobs")
	verifyCmd.Flags().String("input", "", "reference dataset csv file")
	verifyCmd.Flags().String("column", "", "target column name")
	verifyCmd.Flags().String("indicator", "", "registered indicator key")
	verifyCmd.Flags().Int("window", 0, "indicator window")
	verifyCmd.Flags().Float64("epsilon", 1e-3, "tolerance")
	verifyCmd.Flags().Bool("convergence", false, "use the convergence check instead of plain delta")

	RootCmd.AddCommand(verifyCmd)
}

func jobFromFlags(cmd *cobra.Command) (*config.Job, error) {
	input, _ := cmd.Flags().GetString("input")
	column, _ := cmd.Flags().GetString("column")
	key, _ := cmd.Flags().GetString("indicator")
	window, _ := cmd.Flags().GetInt("window")
	epsilon, _ := cmd.Flags().GetFloat64("epsilon")
	convergence, _ := cmd.Flags().GetBool("convergence")

	job := &config.Job{
		Name:      key,
		Indicator: key,
		Window:    window,
		Input:     input,
		Column:    column,
		Epsilon:   epsilon,
		Mode:      config.ModeDelta,
	}
	if convergence {
		job.Mode = config.ModeConvergence
	}

	if err := job.Validate(); err != nil {
		return nil, errors.Wrap(err, "see --config or the --input/--column/--indicator/--window flags")
	}

	return job, nil
}

func runJob(job *config.Job) error {
	factory, err := indicator.GetFactory(job.Indicator)
	if err != nil {
		return errors.Errorf("%v, registered: %v", err, indicator.RegisteredKeys())
	}
	ind := factory(job.Window)

	assertion := verify.InDelta(job.Epsilon)
	if job.Mode == config.ModeConvergence {
		assertion = verify.Convergence(job.Epsilon)
	}

	f, err := os.Open(job.Input)
	if err != nil {
		return errors.Wrapf(err, "can not open reference dataset %s", job.Input)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	log.Infof("verifying %s(%d) against %s column %q", job.Indicator, job.Window, job.Input, job.Column)

	bar := pb.Full.Start64(stat.Size())
	scanner, err := csvsource.NewColumnScanner(bar.NewProxyReader(f), job.Column)
	if err != nil {
		bar.Finish()
		return errors.Wrapf(err, "%s", job.Input)
	}

	report, err := verify.Replay(ind, scanner, assertion)
	bar.Finish()
	if report != nil {
		report.WriteTable(os.Stdout)
	}

	return err
}
