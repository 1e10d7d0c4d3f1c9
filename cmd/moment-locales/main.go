// Command moment-locales generates locale files from CLDR core data.
//
//	moment-locales -cldr ./cldr-common -locale eo -locale hr:HR -out ./locales
//
// Each locale becomes one YAML file holding month and weekday names, the
// meridiem words, the first day of the week and the long date presets. Phrases
// CLDR does not describe the way moment does (relative time, calendar) are
// left out and inherited from the parent locale once the file is registered.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
	"gopkg.in/yaml.v3"
)

type localeSpec struct {
	Locale    string
	Territory string
}

type generatorConfig struct {
	out      string
	cldrPath string
	locales  []localeSpec
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			f.items = append(f.items, part)
		}
	}
	return nil
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "moment-locales: %v\n", err)
	os.Exit(1)
}

func parseFlags(fs *flag.FlagSet, args []string) (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	fs.StringVar(&cfg.out, "out", "locales", "directory receiving the generated locale files")
	fs.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data (directory or zip archive)")
	fs.Var(&localeList, "locale", "locale to generate (optionally locale:REGION). Repeat flag to add more.")

	if err := fs.Parse(args); err != nil {
		return generatorConfig{}, err
	}

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	for _, item := range localeList.items {
		spec, err := parseLocaleSpec(item)
		if err != nil {
			return generatorConfig{}, err
		}
		cfg.locales = append(cfg.locales, spec)
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data (set -cldr or CLDR_CORE_DIR)")
	}
	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, spec := range cfg.locales {
		doc, err := buildDocument(data, spec)
		if err != nil {
			return fmt.Errorf("build %s: %w", spec.Locale, err)
		}
		payload, err := renderDocument(doc)
		if err != nil {
			return fmt.Errorf("render %s: %w", spec.Locale, err)
		}
		target := filepath.Join(cfg.out, doc.Locale+".yaml")
		if err := os.WriteFile(target, payload, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", target)
	}
	return nil
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR data: %w", err)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("dates")

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(path), ".zip") {
			return nil, fmt.Errorf("CLDR path %q is neither a directory nor a zip archive", path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		data, err := decoder.DecodeZip(f)
		if err != nil {
			return nil, fmt.Errorf("decode CLDR archive: %w", err)
		}
		return data, nil
	}

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func parseLocaleSpec(input string) (localeSpec, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return localeSpec{}, errors.New("empty locale value")
	}

	spec := localeSpec{Locale: input}
	if locale, territory, ok := strings.Cut(input, ":"); ok {
		spec.Locale = strings.TrimSpace(locale)
		spec.Territory = strings.ToUpper(strings.TrimSpace(territory))
	}
	spec.Locale = strings.ToLower(strings.ReplaceAll(spec.Locale, "_", "-"))

	if spec.Locale == "" {
		return localeSpec{}, fmt.Errorf("invalid locale spec %q", input)
	}
	return spec, nil
}

func renderDocument(doc localeDocument) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# Code generated by moment-locales. DO NOT EDIT.\n")
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
