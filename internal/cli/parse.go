package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coordtask/pkg/coords"
	"github.com/matzehuels/coordtask/pkg/errors"
)

// parseResult is one entry of the parse command's JSON output.
type parseResult struct {
	Raw        string             `json:"raw"`
	Coordinate *coords.Coordinate `json:"coordinate,omitempty"`
	Code       errors.Code        `json:"code,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <dependency|exclusion|pom> <coords>...",
		Short: "Parse coordinate strings",
		Long: `Parse one or more colon-delimited coordinate strings.

Grammars:
  dependency  groupId:artifactId:version[[:type[:classifier]]:scope]
              defaults: type "jar", classifier "", scope "compile"
  exclusion   groupId[:artifactId[:extension[:classifier]]]
              absent fields default to "*"; a trailing ":" keeps an empty classifier
  pom         groupId:artifactId:version`,
		Example: `  coordtask parse dependency junit:junit:4.13:test
  coordtask parse exclusion org.slf4j:slf4j-api:jar:
  coordtask parse pom org.example:parent:1.0 --json`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []string{"dependency", "exclusion", "pom"}, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := coords.ParseVariant(args[0])
			if err != nil {
				return err
			}
			return runParse(cmd, v, args[1:], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write results as JSON")

	return cmd
}

func runParse(cmd *cobra.Command, v coords.Variant, raws []string, asJSON bool) error {
	logger := loggerFromContext(cmd.Context())
	w := cmd.OutOrStdout()

	results := make([]parseResult, len(raws))
	failed := 0
	for i, raw := range raws {
		results[i].Raw = raw
		c, err := coords.Parse(v, raw)
		if err != nil {
			logger.Debug("Parse failed", "variant", v, "raw", raw, "err", err)
			results[i].Code = errors.GetCode(err)
			results[i].Error = errors.UserMessage(err)
			failed++
			continue
		}
		results[i].Coordinate = &c
	}

	if asJSON {
		if err := writeJSON(w, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			printParseResult(w, r)
		}
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidCoordinate, "%d of %d %s coordinates failed to parse", failed, len(raws), v)
	}
	return nil
}

func printParseResult(w io.Writer, r parseResult) {
	if r.Coordinate == nil {
		printError(w, "%s", r.Error)
		return
	}
	printSuccess(w, "%s", r.Raw)
	printCoordinate(w, *r.Coordinate)
}

// printCoordinate prints the fields that apply to the coordinate's variant.
func printCoordinate(w io.Writer, c coords.Coordinate) {
	printKeyValue(w, "groupId", c.GroupID)
	printKeyValue(w, "artifactId", c.ArtifactID)
	switch c.Variant {
	case coords.Dependency:
		printKeyValue(w, "version", c.Version)
		printKeyValue(w, "type", c.Type)
		printKeyValue(w, "classifier", c.Classifier)
		printKeyValue(w, "scope", c.Scope)
	case coords.Exclusion:
		printKeyValue(w, "extension", c.Extension())
		printKeyValue(w, "classifier", c.Classifier)
	case coords.POM:
		printKeyValue(w, "version", c.Version)
	}
}
