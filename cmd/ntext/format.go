package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muir/ntext"
)

var (
	inputFormat string
	configPath  string
	overrides   []string
	complexity  string
)

var formatCmd = &cobra.Command{
	Use:   "format [file...]",
	Short: "Print each document in the files (or stdin) on one line",
	Long: `Decodes JSON or YAML documents and prints the text of each one.  The
input format is taken from the file extension unless --input is given.
Standard input, named as "-" or by giving no files, is JSON by default.`,
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVar(&inputFormat, "input", "", "Input format: json or yaml")
	formatCmd.Flags().StringVar(&configPath, "config", "", "YAML file with formatter settings")
	formatCmd.Flags().StringArrayVar(&overrides, "set", nil, "Override a setting: --set array.prefix=[")
	formatCmd.Flags().StringVar(&complexity, "complexity", "", "Output complexity: disable, skeleton, basic, medium, complex, or full")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	f, err := buildFormatter()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		if err := formatSource(cmd, f, name); err != nil {
			return err
		}
	}
	return nil
}

func formatSource(cmd *cobra.Command, f *ntext.Formatter, name string) error {
	format, err := formatOf(name)
	if err != nil {
		return err
	}
	r := cmd.InOrStdin()
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer file.Close()
		r = file
	}
	logger.Debug("Formatting documents", zap.String("source", name), zap.String("format", format))
	out := cmd.OutOrStdout()
	err = eachDocument(r, format, func(doc any) {
		fmt.Fprintln(out, f.FormatValue(doc))
	})
	return errors.Wrap(err, name)
}

// buildFormatter applies --config, then --set, then --complexity.
func buildFormatter() (*ntext.Formatter, error) {
	settings := ntext.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = ntext.LoadSettings(configPath)
		if err != nil {
			return nil, err
		}
	}
	if len(overrides) > 0 {
		values := make(map[string]any, len(overrides))
		for _, o := range overrides {
			key, value, ok := strings.Cut(o, "=")
			if !ok || key == "" {
				return nil, errors.Errorf("invalid --set '%s', expecting key=value", o)
			}
			values[strings.TrimSpace(key)] = value
		}
		var err error
		settings, err = ntext.ApplyOverrides(settings, values)
		if err != nil {
			return nil, err
		}
	}
	if complexity != "" {
		level, err := ntext.ParseComplexity(complexity)
		if err != nil {
			return nil, err
		}
		settings.OutputComplexity = level
	}
	registry := ntext.NewRegistry()
	// numbers are kept as written rather than quoted
	ntext.Handle(registry, func(n json.Number, b *ntext.Builder) {
		b.AppendString(n.String())
	})
	return ntext.NewFormatter(
		ntext.WithSettings(settings),
		ntext.WithRegistry(registry),
		ntext.WithLogger(logger),
	), nil
}

func formatOf(name string) (string, error) {
	if inputFormat != "" {
		switch strings.ToLower(inputFormat) {
		case "json":
			return "json", nil
		case "yaml", "yml":
			return "yaml", nil
		}
		return "", errors.Errorf("unknown input format '%s'", inputFormat)
	}
	if name == "-" {
		return "json", nil
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", errors.Errorf("cannot tell the format of %s, use --input", name)
}

// eachDocument decodes a stream of documents
func eachDocument(r io.Reader, format string, fn func(any)) error {
	type decoder interface {
		Decode(any) error
	}
	var dec decoder
	if format == "json" {
		jd := json.NewDecoder(r)
		jd.UseNumber()
		dec = jd
	} else {
		dec = yaml.NewDecoder(r)
	}
	for i := 0; ; i++ {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "decode %s document %d", format, i+1)
		}
		fn(doc)
	}
}
