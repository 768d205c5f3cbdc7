package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conduit-lang/cldispatch/internal/cli/config"
	"github.com/conduit-lang/cldispatch/internal/cli/ui"
	"github.com/conduit-lang/cldispatch/internal/driver/refdriver"
	"github.com/conduit-lang/cldispatch/internal/inspect"
	"github.com/conduit-lang/cldispatch/internal/registry"
)

// initAnswers are the values cldispatch init asks for.
type initAnswers struct {
	DriverName    string   `survey:"driverName"`
	DriverVersion string   `survey:"driverVersion"`
	Platforms     string   `survey:"platforms"`
	Layers        []string `survey:"layers"`
	Sink          string   `survey:"sink"`
	ServerAddr    string   `survey:"serverAddr"`
}

func defaultInitAnswers() initAnswers {
	d := refdriver.DefaultConfig()
	return initAnswers{
		DriverName:    d.Name,
		DriverVersion: d.Version,
		Platforms:     strconv.Itoa(d.Platforms),
		Layers:        []string{},
		Sink:          config.SinkNone,
		ServerAddr:    inspect.DefaultConfig().Address,
	}
}

// askInit is replaced in tests.
var askInit = func(a *initAnswers) error {
	var versions []string
	for _, v := range registry.Builtin().Versions() {
		versions = append(versions, v.String())
	}

	questions := []*survey.Question{
		{
			Name:     "driverName",
			Prompt:   &survey.Input{Message: "Reference driver name:", Default: a.DriverName},
			Validate: survey.Required,
		},
		{
			Name:   "driverVersion",
			Prompt: &survey.Select{Message: "API version it implements:", Options: versions, Default: a.DriverVersion},
		},
		{
			Name:   "platforms",
			Prompt: &survey.Input{Message: "Platforms it exposes:", Default: a.Platforms},
			Validate: func(ans interface{}) error {
				n, err := strconv.Atoi(fmt.Sprint(ans))
				if err != nil || n < 0 {
					return fmt.Errorf("enter a non-negative number")
				}
				return nil
			},
		},
		{
			Name:   "layers",
			Prompt: &survey.MultiSelect{Message: "Layers:", Options: config.KnownLayers()},
		},
		{
			Name: "sink",
			Prompt: &survey.Select{
				Message: "Stats sink:",
				Options: []string{config.SinkNone, config.SinkSQL, config.SinkRedis},
				Default: a.Sink,
				Help:    "sql and redis need the apistats layer",
			},
		},
		{
			Name:   "serverAddr",
			Prompt: &survey.Input{Message: "Inspect server address:", Default: a.ServerAddr},
		},
	}
	return survey.Ask(questions, a)
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var (
		yes   bool
		force bool
		path  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a cldispatch.yaml",
		Long: `Write a configuration file, prompting for the reference driver, the
layers to enable and where call statistics go.

Examples:
  cldispatch init
  cldispatch init --yes
  cldispatch init --path ci.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			answers := defaultInitAnswers()
			if !yes {
				if err := askInit(&answers); err != nil {
					return err
				}
			}

			if err := writeInitConfig(path, answers); err != nil {
				return err
			}
			ui.WriteSuccess(cmd.OutOrStdout(), "wrote "+path, noColor(cmd))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "accept defaults without prompting")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVarP(&path, "path", "p", config.FileName, "file to write")

	return cmd
}

// writeInitConfig validates answers through the config loader before
// writing anything.
func writeInitConfig(path string, a initAnswers) error {
	platforms, err := strconv.Atoi(a.Platforms)
	if err != nil {
		return fmt.Errorf("invalid platform count %q", a.Platforms)
	}

	v := viper.New()
	config.SetDefaults(v)

	driver := refdriver.DefaultConfig()
	v.Set("drivers", []map[string]any{{
		"name":      a.DriverName,
		"vendor":    driver.Vendor,
		"version":   a.DriverVersion,
		"platforms": platforms,
		"devices":   driver.Devices,
	}})
	v.Set("loader.layers", a.Layers)
	v.Set("stats.sink", a.Sink)
	v.Set("server.addr", a.ServerAddr)

	if _, err := config.LoadFrom(v); err != nil {
		return err
	}

	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
