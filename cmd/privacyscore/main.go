package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/privacyscore/internal/profile"
	"github.com/dshills/privacyscore/internal/render"
	"github.com/dshills/privacyscore/internal/schema"
	"github.com/dshills/privacyscore/internal/scoring"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// Exit codes.
const (
	exitOK     = 0
	exitOutput = 1
	exitUsage  = 2
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// scoreFlags holds the parsed flags for the root command.
type scoreFlags struct {
	profileKey   string
	custom       bool
	name         string
	description  string
	zk           bool
	fhe          bool
	openSource   bool
	audited      bool
	soundness    bool
	listProfiles bool
	json         bool
	verbose      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitErr
	if errors.As(err, &ee) {
		printError(stderr, ee.msg)
		return ee.code
	}
	// Anything cobra rejects before RunE is a usage error.
	printError(stderr, err.Error())
	fmt.Fprint(stderr, root.UsageString())
	return exitUsage
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags scoreFlags
	root := &cobra.Command{
		Use:   "privacyscore",
		Short: "Estimate a toy privacy score for Web3-style projects",
		Long: "privacyscore: small CLI to estimate a toy privacy score for Web3-style projects, " +
			"inspired by ecosystems like Aztec, Zama, and soundness-focused research labs.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.Flags()
	f.StringVar(&flags.profileKey, "profile", "", "Use a built-in profile (aztec, zama, soundness)")
	f.BoolVar(&flags.custom, "custom", false, "Define a custom project profile using flags")
	f.StringVar(&flags.name, "name", "", "Name of the custom project")
	f.StringVar(&flags.description, "description", "", "Description of the custom project")
	f.BoolVar(&flags.zk, "zk", false, "Project uses zero-knowledge proofs")
	f.BoolVar(&flags.fhe, "fhe", false, "Project uses fully homomorphic encryption")
	f.BoolVar(&flags.openSource, "open-source", false, "Project is open source")
	f.BoolVar(&flags.audited, "audited", false, "Project has external audits")
	f.BoolVar(&flags.soundness, "soundness", false, "Strong focus on formal soundness and verification")
	f.BoolVar(&flags.listProfiles, "list-profiles", false, "List built-in example profiles")
	f.BoolVar(&flags.json, "json", false, "Print result as a JSON object instead of human-readable text")
	f.BoolVar(&flags.verbose, "verbose", false, "Print processing steps to stderr")

	root.MarkFlagsMutuallyExclusive("profile", "custom")

	return root
}

func runScore(stdout, stderr io.Writer, flags scoreFlags) error {
	// --- Step 1: Listing short-circuits everything else ---
	if flags.listProfiles {
		logVerbose(stderr, flags.verbose, "Listing %d built-in profile(s)", len(profile.Keys()))
		return write(stdout, render.List(profile.All()))
	}

	// --- Step 2: Resolve profile ---
	prof, found := resolveProfile(stderr, flags)
	if !found {
		return write(stdout, render.UnknownProfile(profile.All()))
	}

	// --- Step 3: Score ---
	score := scoring.Score(prof)
	logVerbose(stderr, flags.verbose, "Score for %q: %d/%d", prof.Name, score, scoring.MaxScore)

	// --- Step 4: Render ---
	format := "text"
	if flags.json {
		format = "json"
	}
	logVerbose(stderr, flags.verbose, "Rendering output (format: %s)", format)
	renderer, err := render.NewRenderer(format)
	if err != nil {
		return codeError(exitOutput, "invalid format: %s", err)
	}
	out, err := renderer.Render(schema.NewReport(prof, score))
	if err != nil {
		return codeError(exitOutput, "rendering output: %s", err)
	}
	return write(stdout, out)
}

// resolveProfile picks the built-in profile named by --profile, or builds a
// custom one from the feature flags. found is false only when --profile
// names a key the registry does not have.
func resolveProfile(stderr io.Writer, flags scoreFlags) (prof schema.Profile, found bool) {
	if flags.profileKey != "" {
		p, err := profile.Get(flags.profileKey)
		if err != nil {
			logVerbose(stderr, flags.verbose, "Profile lookup failed: %s", err)
			return schema.Profile{}, false
		}
		logVerbose(stderr, flags.verbose, "Using built-in profile: %s", flags.profileKey)
		return p, true
	}

	logVerbose(stderr, flags.verbose, "Building custom profile from flags")
	return profile.Custom(profile.CustomOptions{
		Name:        flags.name,
		Description: flags.description,
		ZK:          flags.zk,
		FHE:         flags.fhe,
		OpenSource:  flags.openSource,
		Audited:     flags.audited,
		Soundness:   flags.soundness,
	}), true
}

// write copies out to w, ensuring it ends with a newline.
func write(w io.Writer, out []byte) error {
	if _, err := w.Write(out); err != nil {
		return codeError(exitOutput, "writing output: %s", err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		if _, err := fmt.Fprintln(w); err != nil {
			return codeError(exitOutput, "writing output: %s", err)
		}
	}
	return nil
}

// printError writes "Error: msg" to w. The prefix is red unless colour is
// disabled (non-terminal stdout or NO_COLOR).
func printError(w io.Writer, msg string) {
	color.New(color.FgRed, color.Bold).Fprint(w, "Error:")
	fmt.Fprintf(w, " %s\n", msg)
}

// logVerbose writes an INFO message to w when verbose mode is enabled.
func logVerbose(w io.Writer, verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(w, "INFO: "+format+"\n", args...)
	}
}
