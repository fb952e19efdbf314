package cmd

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var RootCmd = &cobra.Command{
	Use:   "goldentick",
	Short: "goldentick verifies streaming indicators against recorded reference datasets",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
}

func Execute() error {
	viper.SetEnvPrefix("GOLDENTICK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		return err
	}

	log.SetFormatter(&prefixed.TextFormatter{})
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	return RootCmd.Execute()
}
