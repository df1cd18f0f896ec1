package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"okazu/internal/anime"
	"okazu/internal/render"
	"okazu/internal/script"
	"okazu/internal/term"
)

const version = "1.0.0"

const defaultIntervalMS = 1000

var (
	preCaptions   []string
	afterCaptions []string
	scriptFile    string
	animeMode     bool
	intervalMS    int
	splitPolicy   string
	// Caption for the one-shot say command
	sayCaption string
)

// main registers the root command and subcommands and executes them.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:     "okazu [side dish]...",
		Short:   "a dragon announces your side dishes",
		Version: version,
		RunE:    runDragon,
	}
	rootCmd.Flags().StringArrayVarP(&preCaptions, "pre-caption", "p", nil, "caption shown before the side dishes (repeatable)")
	rootCmd.Flags().StringArrayVarP(&afterCaptions, "after-caption", "A", nil, "caption shown after the side dishes (repeatable)")
	rootCmd.Flags().StringVarP(&scriptFile, "script-file", "f", "", "load side dishes and captions from a yaml script")
	rootCmd.Flags().BoolVarP(&animeMode, "anime", "a", false, "animate: clear the screen between frames")
	rootCmd.Flags().IntVarP(&intervalMS, "interval", "i", defaultIntervalMS, "animation interval in milliseconds")
	rootCmd.PersistentFlags().StringVar(&splitPolicy, "split", "chars", "side dish split policy (chars|lines)")

	sayCmd := &cobra.Command{
		Use:   "say [side dish]",
		Short: "print one dragon and exit",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSay,
	}
	sayCmd.Flags().StringVarP(&sayCaption, "caption", "c", "", "caption under the dragon")

	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "manage script files",
	}

	scriptInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write an example script file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScriptInit,
	}

	scriptCheckCmd := &cobra.Command{
		Use:   "check [path]",
		Short: "validate a script file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runScriptCheck,
	}

	scriptCmd.AddCommand(scriptInitCmd, scriptCheckCmd)
	rootCmd.AddCommand(sayCmd, scriptCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDragon(cmd *cobra.Command, args []string) error {
	if scriptFile != "" && (len(args) > 0 || len(preCaptions) > 0 || len(afterCaptions) > 0) {
		return fmt.Errorf("--script-file conflicts with side dish arguments and caption flags")
	}

	interval := time.Duration(intervalMS) * time.Millisecond
	if animeMode && interval < anime.MinInterval {
		return fmt.Errorf("interval must be at least %dms", anime.MinInterval/time.Millisecond)
	}

	policy, err := render.ParsePolicy(splitPolicy)
	if err != nil {
		return err
	}

	dishes, pre, after := args, preCaptions, afterCaptions
	if scriptFile != "" {
		sc, err := script.Load(scriptFile)
		if err != nil {
			return fmt.Errorf("failed to load script: %w", err)
		}
		if err := sc.Validate(); err != nil {
			return err
		}
		dishes, pre, after = sc.SideDishes, sc.PreCaptions, sc.AfterCaptions
	}

	plan := anime.Plan{
		PreCaptions:   pre,
		SideDishes:    dishes,
		AfterCaptions: after,
		Split:         policy,
	}
	if animeMode {
		plan.Interval = interval
	}

	return anime.New(term.Stdout()).Run(plan)
}

func runSay(cmd *cobra.Command, args []string) error {
	policy, err := render.ParsePolicy(splitPolicy)
	if err != nil {
		return err
	}

	dish := ""
	if len(args) > 0 {
		dish = args[0]
	}
	return anime.New(term.Stdout()).Say(dish, sayCaption, policy)
}

func runScriptInit(cmd *cobra.Command, args []string) error {
	path := "okazu.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := script.Save(path, script.Example()); err != nil {
		return err
	}

	fmt.Printf("wrote example script to %s\n", path)
	return nil
}

func runScriptCheck(cmd *cobra.Command, args []string) error {
	sc, err := script.Load(args[0])
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LIST\tITEMS")
	fmt.Fprintf(w, "pre_captions\t%d\n", len(sc.PreCaptions))
	fmt.Fprintf(w, "side_dishes\t%d\n", len(sc.SideDishes))
	fmt.Fprintf(w, "after_captions\t%d\n", len(sc.AfterCaptions))
	return w.Flush()
}
