/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/oodle-helper/internal/commands/decompress"
	"github.com/blacktop/oodle-helper/internal/config"
	"github.com/blacktop/oodle-helper/pkg/oodle"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// AppVersion stores the plugin's version
	AppVersion string
	// AppBuildTime stores the plugin's build time
	AppBuildTime string
)

// options holds the state shared by the root command and its subcommands.
type options struct {
	cfgFile string
	v       *viper.Viper
	dec     decompress.Decompressor
	conf    *config.Config
	// data channels; cobra's own output goes to stderr
	stdin  io.Reader
	stdout io.Writer
	// command whose help was requested
	helpCmd *cobra.Command
}

// newRootCmd builds the command tree around opts.
func newRootCmd(opts *options) *cobra.Command {
	opts.v = viper.New()

	rootCmd := &cobra.Command{
		Use:           "oodle-helper",
		Short:         "Oodle decompression helper",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: missing command", decompress.ErrUsage)
			}
			return fmt.Errorf("%w: unknown command: %s", decompress.ErrUsage, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/oodle-helper/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().String("max-size", "", "maximum compressed/decompressed size (default 64MiB)")
	bindFlags(opts.v, rootCmd.PersistentFlags())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", decompress.ErrUsage, err)
	})

	rootCmd.AddCommand(newDecompressCmd(opts))
	// Settings
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	// --help/-h is a usage error, not a successful run
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		opts.helpCmd = cmd
	})

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, oodle.NewDecoder()))
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer, dec decompress.Decompressor) int {
	log.SetHandler(clihander.New(stderr))
	log.SetLevel(log.InfoLevel)

	if args == nil {
		// cobra falls back to os.Args when args is nil
		args = []string{}
	}

	opts := &options{
		dec:    dec,
		stdin:  stdin,
		stdout: stdout,
	}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil && opts.helpCmd != nil {
		cmd = opts.helpCmd
		err = fmt.Errorf("%w: help flag requested", decompress.ErrUsage)
	}
	if err != nil {
		log.Error(err.Error())
		if errors.Is(err, decompress.ErrUsage) && cmd != nil {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}

// initConfig reads in config file and ENV variables if set.
func (o *options) initConfig() error {
	if o.cfgFile != "" {
		// Use config file from the flag.
		o.v.SetConfigFile(o.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		o.v.AddConfigPath(filepath.Join(home, ".config", "oodle-helper"))
		o.v.SetConfigType("yaml")
		o.v.SetConfigName("config")
	}

	o.v.SetEnvPrefix("oodle_helper")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	o.v.AutomaticEnv()

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %v", err)
		}
	}

	conf, err := config.LoadConfig(o.v)
	if err != nil {
		return err
	}
	if conf.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.WithField("version", version()).Debug("oodle-helper")
	if used := o.v.ConfigFileUsed(); used != "" {
		log.WithField("config", used).Debug("Using config file")
	}
	o.conf = conf

	return nil
}

// bindFlags binds every flag in fs (except --config) to the viper key of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		v.BindPFlag(f.Name, f)
	})
}

func version() string {
	if AppVersion == "" {
		return "dev"
	}
	if AppBuildTime == "" {
		return AppVersion
	}
	return fmt.Sprintf("%s, BuildTime: %s", AppVersion, AppBuildTime)
}
