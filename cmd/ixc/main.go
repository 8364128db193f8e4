// Copyright 2024 The Ix Authors
// This file is part of ixc.

// Command ixc is the Ix language compiler front end.
//
// Usage:
//
//	ixc [flags] <source.ix>...
//
// Flags:
//
//	--output-dir <path>        Output directory (required unless --dry-run or --emit)
//	--target-language <name>   Target language, currently only "C"
//	--dry-run                  Parse but do not invoke the generator
//	--config <path>            Optional ixc.toml with default flag values
//	--emit <tokens|tree>       Print an intermediate stage and exit
package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ixlang/ixc/internal/diagnostic"
	"github.com/ixlang/ixc/internal/ixconfig"
	"github.com/ixlang/ixc/internal/pipeline"
	"github.com/ixlang/ixc/internal/tree"
)

var (
	flagOutputDir      string
	flagTargetLanguage string
	flagDryRun         bool
	flagConfigPath     string
	flagEmit           string
)

func main() {
	reporter := diagnostic.NewStderr()
	root := newRootCommand(reporter)
	if err := root.Execute(); err != nil {
		os.Exit(-1)
	}
}

func newRootCommand(reporter *diagnostic.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ixc [flags] <source.ix>...",
		Short:        "Ix language compiler front end",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, reporter)
		},
	}
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "output directory (required unless --dry-run or --emit)")
	cmd.Flags().StringVar(&flagTargetLanguage, "target-language", "", "target language (currently only C)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "parse but do not invoke the generator")
	cmd.Flags().StringVar(&flagConfigPath, "config", "", "path to an optional ixc.toml")
	cmd.Flags().StringVar(&flagEmit, "emit", "", "print an intermediate stage instead of generating: tokens, tree")
	return cmd
}

func run(cmd *cobra.Command, args []string, reporter *diagnostic.Reporter) error {
	cfg := resolveConfig()

	if flagEmit != "" {
		return runEmit(args, flagEmit, reporter)
	}

	opts := pipeline.Options{
		OutputDir:      cfg.OutputDir,
		TargetLanguage: cfg.TargetLanguage,
		DryRun:         flagDryRun,
		Sources:        args,
	}
	result, err := pipeline.Run(opts)
	if err != nil {
		reporter.AbortSession(result.SessionID, err)
		return err
	}
	for _, fr := range result.Files {
		reporter.OdditiesForSession(result.SessionID, fr.Path, fr.Oddities)
	}
	return nil
}

// resolveConfig loads the --config file, or else ixc.toml in the working
// directory if one exists, and merges the CLI flags on top of it,
// the flags always winning over the file's defaults.
func resolveConfig() ixconfig.Config {
	path := flagConfigPath
	if path == "" {
		path = "ixc.toml"
	}
	fileCfg, _ := ixconfig.Load(path)
	flagCfg := ixconfig.Config{
		OutputDir:      flagOutputDir,
		TargetLanguage: flagTargetLanguage,
	}
	return fileCfg.Merge(flagCfg)
}

func runEmit(sources []string, stage string, reporter *diagnostic.Reporter) error {
	switch stage {
	case "tokens":
		return emitTokens(sources, reporter)
	case "tree":
		return emitTree(sources, reporter)
	default:
		err := fmt.Errorf("ixc: unknown emit stage %q (want tokens or tree)", stage)
		reporter.Abort(err)
		return err
	}
}

func emitTokens(sources []string, reporter *diagnostic.Reporter) error {
	for _, src := range sources {
		entries, err := pipeline.Tokens(src)
		if err != nil {
			reporter.Abort(err)
			return err
		}
		fmt.Printf("%s:\n", src)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Offset", "Group", "Type", "Lexeme"})
		for _, e := range entries {
			table.Append(e.Values())
		}
		table.Render()
	}
	return nil
}

func emitTree(sources []string, reporter *diagnostic.Reporter) error {
	for _, src := range sources {
		root, err := pipeline.Tree(src)
		if err != nil {
			reporter.Abort(err)
			return err
		}
		fmt.Printf("%s:\n", src)
		printNode(root, 0)
	}
	return nil
}

func printNode(n *tree.Node, depth int) {
	if tok := n.Token(); tok != nil {
		fmt.Printf("%*s%s/%s %q\n", depth*2, "", tok.Group, tok.Type, tok.Text())
	}
	for _, c := range n.Children() {
		printNode(c, depth+1)
	}
}
