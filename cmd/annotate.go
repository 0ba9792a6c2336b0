package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luethan2025/doc240/annotator"
	"github.com/luethan2025/doc240/isa"
	"github.com/luethan2025/doc240/profile"
	"github.com/luethan2025/doc240/renderer"
	"github.com/urfave/cli/v2"
)

var (
	FilenameFlag = &cli.PathFlag{
		Name:     "filename",
		Usage:    "Path to the assembly source file",
		Required: true,
	}
	OutputFlag = &cli.PathFlag{
		Name:     "output",
		Usage:    "Path for the annotated file. Default: rewrite the source in place",
		Required: false,
	}
	ISAProfileFlag = &cli.PathFlag{
		Name:     "isa-profile",
		Usage:    "Path to a YAML ISA profile with custom comment templates",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the run report. Options: json, text",
		Required:    false,
		DefaultText: "text",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for the run report. Default: stdout",
		Required: false,
	}
)

func CreateAnnotateCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "annotate",
		Usage:       "Aligns the file's columns and appends a comment to every instruction",
		Description: "Aligns the file's columns and appends a comment to every instruction",
		Action:      action,
		Flags: []cli.Flag{
			FilenameFlag,
			OutputFlag,
			ISAProfileFlag,
			FormatFlag,
			ReportOutputPathFlag,
		},
	}
}

var AnnotateCommand = CreateAnnotateCommand(AnnotateFile)

func AnnotateFile(ctx *cli.Context) error {
	prof, err := loadProfile(ctx.Path(ISAProfileFlag.Name))
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	source := ctx.Path(FilenameFlag.Name)
	outputPath := ctx.Path(OutputFlag.Name)
	format := ctx.String(FormatFlag.Name)
	reportOutputPath := ctx.Path(ReportOutputPathFlag.Name)

	if err := checkSource(source, prof.Extension); err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = source
	}

	lines, err := readLines(source)
	if err != nil {
		return fmt.Errorf("error reading the file: %w", err)
	}

	catalog := isa.Default()
	if len(prof.Templates) > 0 {
		catalog = catalog.Merge(prof.Templates)
	}

	text, stats, err := annotator.New(catalog).Annotate(lines)
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(text), 0600); err != nil {
		return fmt.Errorf("unable to write the annotated file: %w", err)
	}

	report := &renderer.Report{
		Source: source,
		Output: outputPath,
		ISA:    prof.Name,
		Stats:  stats,
	}
	if err := writeReport(report, format, reportOutputPath); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

// loadProfile resolves the ISA profile, falling back to stock RISC240.
func loadProfile(path string) (*profile.ISAProfile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.LoadProfile(path)
}

// checkSource validates the preconditions the pipeline relies on: the
// source must exist and carry the profile's expected extension.
func checkSource(source, extension string) error {
	info, err := os.Stat(source)
	if err != nil || info.IsDir() {
		return fmt.Errorf("could not find %s", source)
	}
	if !strings.HasSuffix(source, extension) {
		return fmt.Errorf("expected a file ending with %q, but received %q",
			extension, filepath.Ext(source))
	}
	return nil
}

// readLines reads the whole source up front; the pipeline never touches
// the file again until the final write.
func readLines(source string) ([]string, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	return annotator.SplitLines(string(data)), nil
}

// writeReport outputs the run report in the specified format.
func writeReport(report *renderer.Report, format, outputPath string) error {
	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	var rendererInstance renderer.Renderer
	switch format {
	case "", "text":
		rendererInstance = renderer.NewTextRenderer()
	case "json":
		rendererInstance = renderer.NewJSONRenderer()
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return rendererInstance.Render(report, output)
}
