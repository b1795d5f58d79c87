package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coordtask/pkg/taskfile"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	pom    string // optional pom.xml to import
	asJSON bool   // write JSON instead of styled text
}

// checkReport is the JSON output of the check command.
type checkReport struct {
	TaskFile          *taskfile.TaskFile       `json:"taskfile"`
	POM               *taskfile.POMImport      `json:"pomImport,omitempty"`
	SelfExclusions    []taskfile.SelfExclusion `json:"selfExclusions,omitempty"`
	POMSelfExclusions []taskfile.SelfExclusion `json:"pomSelfExclusions,omitempty"`
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check <taskfile>",
		Short: "Load a task file and report its coordinates",
		Long: `Load a TOML task file, parse every coords attribute and print the result.

A malformed coords string fails the check and names the attribute that holds it.
Exclusions that match their own dependency are reported as warnings.`,
		Example: `  coordtask check build.toml
  coordtask check build.toml --pom pom.xml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.pom, "pom", "", "also import dependencies from this pom.xml")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "write the report as JSON")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, opts checkOpts) error {
	logger := loggerFromContext(cmd.Context())
	w := cmd.OutOrStdout()

	prog := newProgress(logger)
	tf, err := taskfile.Load(path)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %s", path))

	report := checkReport{TaskFile: tf, SelfExclusions: tf.SelfExclusions()}

	if opts.pom != "" {
		prog = newProgress(logger)
		imp, err := taskfile.ImportPOM(opts.pom)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Imported %s", opts.pom))
		if len(imp.Skipped) > 0 {
			logger.Warn("Skipped dependencies with unresolved properties", "count", len(imp.Skipped))
		}
		report.POM = imp
		report.POMSelfExclusions = imp.SelfExclusions()
	}

	if opts.asJSON {
		return writeJSON(w, report)
	}
	printReport(w, report)
	return nil
}

func printReport(w io.Writer, r checkReport) {
	tf := r.TaskFile
	title := tf.Name
	if title == "" {
		title = tf.Path
	}
	fmt.Fprintln(w, StyleTitle.Render(title))

	if tf.POM != nil {
		printInfo(w, "pom %s", tf.POM)
	}
	printDependencies(w, tf.Dependencies)

	for _, s := range r.SelfExclusions {
		printWarning(w, "%s (%s) excludes its own dependency %s",
			s.Attribute, s.Pattern, tf.Dependencies[s.Index].Artifact)
	}

	if r.POM != nil {
		printNewline(w)
		fmt.Fprintln(w, StyleTitle.Render(r.POM.Project.String()))
		printDependencies(w, r.POM.Dependencies)
		for _, s := range r.POMSelfExclusions {
			printWarning(w, "%s (%s) excludes its own dependency %s",
				s.Attribute, s.Pattern, r.POM.Dependencies[s.Index].Artifact)
		}
		for _, s := range r.POM.Skipped {
			printWarning(w, "skipped %s (unresolved property)", s)
		}
	}

	printNewline(w)
	printSuccess(w, "%d dependencies, %d exclusions", len(tf.Dependencies), tf.Exclusions())
	if r.POM != nil {
		printSuccess(w, "%d imported dependencies, %d imported exclusions", len(r.POM.Dependencies), r.POM.Exclusions())
	}
}

func printDependencies(w io.Writer, deps []taskfile.Dependency) {
	for _, d := range deps {
		printItem(w, d.Artifact.String())
		for _, e := range d.Exclusions {
			printDetail(w, "excludes %s", e)
		}
	}
}
