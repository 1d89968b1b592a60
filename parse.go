package normcheck

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type yamlConfig struct {
	Alpha   *float64 `yaml:"alpha"`
	File    string   `yaml:"file"`
	Verbose *bool    `yaml:"verbose"`
}

// ParseCommandLine configures the client from command line options or from a
// YAML configuration file passed with the -c flag. Returns a slice of
// functional options that can be applied to the configuration. Flags set
// explicitly on the command line override values from the file.
func ParseCommandLine() ([]ConfigOption, error) {
	return parse(os.Args[1:], createFlagSet())
}

func createFlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("normcheck", pflag.ContinueOnError)
	pf.StringP("config", "c", "", "YAML configuration file")
	pf.StringP("file", "f", "", "read measurements from a file instead of stdin")
	pf.Float64P("alpha", "a", 0.05, "significance level for test verdicts")
	pf.BoolP("verbose", "v", false, "emit the full test report")
	return pf
}

func parse(args []string, pf *pflag.FlagSet) ([]ConfigOption, error) {
	if err := pf.Parse(args); err != nil {
		return nil, err
	}
	var opts []ConfigOption
	if path, err := pf.GetString("config"); err == nil && path != "" {
		fileOpts, err := parseConfigFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}
	if pf.Changed("alpha") {
		a, err := pf.GetFloat64("alpha")
		if err != nil {
			return nil, err
		}
		opts = append(opts, Alpha(a))
	}
	if pf.Changed("file") {
		path, err := pf.GetString("file")
		if err != nil {
			return nil, err
		}
		opts = append(opts, File(path))
	}
	if verbose, err := pf.GetBool("verbose"); err == nil && verbose {
		opts = append(opts, Verbose())
	}
	return opts, nil
}

func parseConfigFile(path string) ([]ConfigOption, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file %s: %v", path, err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(b, &yc); err != nil {
		return nil, fmt.Errorf("could not parse configuration file %s: %v", path, err)
	}
	var opts []ConfigOption
	if yc.Alpha != nil {
		opts = append(opts, Alpha(*yc.Alpha))
	}
	if yc.File != "" {
		opts = append(opts, File(yc.File))
	}
	if yc.Verbose != nil && *yc.Verbose {
		opts = append(opts, Verbose())
	}
	return opts, nil
}
