// Copyright 2025 The HunLex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the hunlex dictionary inspector and compiler CLI.

HunLex loads a Hunspell-format .dic file into the word-model index and
answers queries against it: homonym lookups (case-sensitive or folded),
flag membership, generated surface forms for a stem, and stem enumeration
by prefix. It can also compile the parsed dictionary into a MessagePack
cache for faster repeat startups.

# Usage

Inspect a stem:

	hunlex -dic en_US.dic -stem cat

Generate the surface forms of a stem, optionally pruned against a target:

	hunlex -dic en_US.dic -forms cat
	hunlex -dic en_US.dic -forms cat -similar uncatly

Compile and reuse a cache:

	hunlex -dic en_US.dic -compile en_US.hlc
	hunlex -cache en_US.hlc -stem cat

# Configuration

Defaults come from a TOML file:

	[dict]
	path = "en_US.dic"
	cache_path = "en_US.hlc"
	flag_mode = "char"

	[gen]
	max_forms = 0

Flags on the command line override the file.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/hunlex/internal/logger"
	"github.com/bastiangx/hunlex/pkg/aff"
	"github.com/bastiangx/hunlex/pkg/config"
	"github.com/bastiangx/hunlex/pkg/dic"
)

const (
	Version = "0.3.0"
	AppName = "hunlex"
	gh      = "https://github.com/bastiangx/hunlex"
)

func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	dicPath := flag.String("dic", "", "Path to a .dic dictionary file")
	cachePath := flag.String("cache", "", "Path to a compiled dictionary cache to load")
	compilePath := flag.String("compile", "", "Write a compiled dictionary cache to this path")
	flagMode := flag.String("mode", "", "Flag mode: char, long, num or utf8")
	stem := flag.String("stem", "", "Print the homonym entries of a stem")
	ignoreCase := flag.Bool("i", false, "Fold case for -stem lookups")
	forms := flag.String("forms", "", "Print the generated surface forms of a stem")
	similar := flag.String("similar", "", "Prune -forms output against this target word")
	prefix := flag.String("prefix", "", "List stems starting with a prefix")

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.InitConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *dicPath == "" {
		*dicPath = cfg.Dict.Path
	}
	if *cachePath == "" && *dicPath == "" {
		*cachePath = cfg.Dict.CachePath
	}
	if *flagMode == "" {
		*flagMode = cfg.Dict.FlagMode
	}

	rules, err := buildRules(cfg, *flagMode)
	if err != nil {
		log.Fatalf("Failed to build ruleset: %v", err)
	}

	applog := logger.New(AppName)

	dict, err := loadDictionary(rules, *dicPath, *cachePath)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	applog.Infof("Dictionary ready: %d entries", dict.Len())

	if *compilePath != "" {
		if err := writeCache(dict, *compilePath); err != nil {
			log.Fatalf("Failed to compile cache: %v", err)
		}
		applog.Infof("Compiled cache written to %s", *compilePath)
	}

	switch {
	case *stem != "":
		printHomonyms(dict, *stem, *ignoreCase)
	case *forms != "":
		printForms(dict, *forms, *similar, cfg.Gen.MaxForms)
	case *prefix != "":
		for _, s := range dict.StemsWithPrefix(*prefix) {
			fmt.Println(s)
		}
	case *compilePath == "":
		flag.Usage()
	}
}

// buildRules assembles the ruleset surface from config. Affix rule tables
// come from an external .aff compiler; the CLI only carries the parsing
// side of the ruleset.
func buildRules(cfg *config.Config, flagMode string) (*aff.Aff, error) {
	rules := aff.New()
	mode, err := aff.ParseFlagMode(flagMode)
	if err != nil {
		return nil, err
	}
	rules.FlagMode = mode
	if cfg.Dict.IgnoreChars != "" {
		rules.SetIgnore(cfg.Dict.IgnoreChars)
	}
	if cfg.Dict.TurkicCasing {
		rules.Casing = aff.TurkicCasing{}
	}
	return rules, nil
}

func loadDictionary(rules *aff.Aff, dicPath, cachePath string) (*dic.Dic, error) {
	if cachePath != "" {
		file, err := os.Open(cachePath)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		log.Debugf("Loading compiled cache from %s", cachePath)
		return dic.ReadCompiled(file, rules)
	}
	if dicPath == "" {
		return nil, fmt.Errorf("no dictionary given: pass -dic or -cache")
	}
	file, err := os.Open(dicPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	log.Debugf("Parsing dictionary from %s", dicPath)
	dict := dic.New(rules)
	if err := dict.AddDictionary(dic.NewScannerSource(file)); err != nil {
		return nil, err
	}
	return dict, nil
}

func writeCache(dict *dic.Dic, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return dict.WriteCompiled(file)
}

func printHomonyms(dict *dic.Dic, stem string, ignoreCase bool) {
	homonyms := dict.Homonyms(stem, ignoreCase)
	if len(homonyms) == 0 {
		fmt.Printf("%s: not in dictionary\n", stem)
		return
	}
	for _, w := range homonyms {
		var flags []string
		for _, f := range w.Flags.Sorted() {
			flags = append(flags, string(f))
		}
		fmt.Printf("%s\tcap=%s\tflags=[%s]\n", w.Stem, w.CapType, strings.Join(flags, " "))
		for key, values := range w.Data {
			fmt.Printf("\t%s: %s\n", key, strings.Join(values, ", "))
		}
		if len(w.AltSpellings) > 0 {
			fmt.Printf("\talt: %s\n", strings.Join(w.AltSpellings, ", "))
		}
	}
}

func printForms(dict *dic.Dic, stem, similar string, maxForms int) {
	homonyms := dict.Homonyms(stem, false)
	if len(homonyms) == 0 {
		fmt.Printf("%s: not in dictionary\n", stem)
		return
	}
	printed := 0
	for _, w := range homonyms {
		for _, form := range w.Forms(similar) {
			if maxForms > 0 && printed >= maxForms {
				return
			}
			fmt.Println(form)
			printed++
		}
	}
}

// printVersion displays the version banner, styled like the rest of the
// bastiangx tooling.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ HunLex ] Hunspell dictionary inspector & compiler")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
