// Package options resolves the tool configuration.
//
// Values priority, from the highest:
//  1. flag
//  2. OS ENV
//  3. ".env" file in the working dir, then in the project dir
//  4. flag default
package options

import (
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gochart/exportgen/internal/pkg/env"
	"github.com/gochart/exportgen/internal/pkg/filesystem"
)

type Options struct {
	*viper.Viper
	envNaming *env.NamingConvention
	envs      *env.Map
}

func NewOptions() *Options {
	return &Options{
		Viper:     viper.New(),
		envNaming: env.NewNamingConvention(),
	}
}

// Load binds the flags and applies ENV values for all flags not set on the command line.
func (o *Options) Load(logger *zap.SugaredLogger, osEnvs *env.Map, fs filesystem.Fs, flags *pflag.FlagSet) error {
	if err := o.BindPFlags(flags); err != nil {
		return err
	}

	// Load ENVs from OS and ".env" files, existing keys take precedence.
	dirs := []string{fs.WorkingDir(), "."}
	o.envs = env.LoadDotEnv(logger, osEnvs, fs, dirs)

	// A flag set on the command line wins over the ENV.
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			return
		}
		if value, found := o.envs.Lookup(o.envNaming.Replace(flag.Name)); found {
			o.Set(flag.Name, value)
		}
	})

	return nil
}

// Envs returns the loaded ENV variables.
func (o *Options) Envs() *env.Map {
	return o.envs
}

func (o *Options) Verbose() bool {
	return o.GetBool("verbose")
}

func (o *Options) LogFilePath() string {
	return o.GetString("log-file")
}

func (o *Options) WorkingDir() string {
	return o.GetString("working-dir")
}

func (o *Options) Package() string {
	return o.GetString("package")
}

func (o *Options) TypingPackage() string {
	return o.GetString("typing-package")
}

func (o *Options) EntryFile() string {
	return o.GetString("entry-file")
}

func (o *Options) DryRun() bool {
	return o.GetBool("dry-run")
}

// Dump the options for the log file, sorted by the key.
func (o *Options) Dump() string {
	keys := o.AllKeys()
	sort.Strings(keys)

	var out strings.Builder
	out.WriteString("Parsed options:")
	for _, key := range keys {
		out.WriteString(" ")
		out.WriteString(key)
		out.WriteString("=")
		out.WriteString(o.GetString(key))
	}
	return out.String()
}
