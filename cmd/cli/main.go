package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"docuform/adapters/excel"
	"docuform/adapters/render"
	"docuform/adapters/report"
	"docuform/adapters/store"
	"docuform/app"
	"docuform/domain/core"
	"docuform/domain/selection"
	"docuform/domain/transform"
	"docuform/domain/validate"
	"docuform/internal"
	"docuform/internal/config"
	"docuform/internal/testkit"
	"docuform/ports"
)

func main() {
	// .env is optional; the environment wins either way.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "docuform",
		Short: "Survey-to-document variable transformation and template selection",
	}

	rootCmd.AddCommand(
		newTransformCmd(),
		newSelectCmd(),
		newValidateCmd(),
		newReportCmd(),
		newSeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// transformFlags are shared by every command that runs the transformer.
type transformFlags struct {
	bundle    string
	pinDate   string
	docNumber string
}

func (f *transformFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.bundle, "bundle", "", "survey bundle JSON file (default from BUNDLE_FILE)")
	cmd.Flags().StringVar(&f.pinDate, "pin-date", "", "pin the clock to an ISO date for reproducible output")
	cmd.Flags().StringVar(&f.docNumber, "doc-number", "", "pin the generated document number")
}

func (f *transformFlags) transformContext(cfg *config.Config) (transform.Context, error) {
	ctx := transform.NewContext()
	ctx.DocumentPrefix = cfg.Generation.DocumentPrefix
	ctx.OmitDocumentDate = !cfg.Generation.IncludeDateInNumber
	ctx.DocumentNumber = f.docNumber
	if f.pinDate != "" {
		at, err := time.Parse("2006-01-02", f.pinDate)
		if err != nil {
			return ctx, fmt.Errorf("invalid --pin-date %q: %w", f.pinDate, err)
		}
		ctx.Clock = core.FixedClock{At: at}
	}
	return ctx, nil
}

func loadBundle(ctx context.Context, cfg *config.Config, ref string) (*ports.Bundle, error) {
	if ref == "" {
		ref = cfg.Paths.BundleFile
	}
	return store.NewFileStore().Load(ctx, ref)
}

func newTransformCmd() *cobra.Command {
	var flags transformFlags
	var templateID string

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Resolve the variable map for one template",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			bundle, err := loadBundle(cmd.Context(), cfg, flags.bundle)
			if err != nil {
				return err
			}
			tctx, err := flags.transformContext(cfg)
			if err != nil {
				return err
			}
			tpl, err := findTemplate(bundle.Templates, templateID)
			if err != nil {
				return err
			}
			vm := transform.Transform(bundle.Responses, tpl.Mappings, tctx)
			return printJSON(cmd, vm.Values)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&templateID, "template", "", "template id (defaults to the first template)")
	return cmd
}

func newSelectCmd() *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Classify templates into required/suggested/optional",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			bundle, err := loadBundle(cmd.Context(), cfg, flags.bundle)
			if err != nil {
				return err
			}
			computed := transform.ComputedAggregates(bundle.Responses)
			sel := selection.SelectTemplates(bundle.Responses, bundle.Templates, computed)
			return printJSON(cmd, map[string][]string{
				"required":  templateNames(sel.Required),
				"suggested": templateNames(sel.Suggested),
				"optional":  templateNames(sel.Optional),
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newValidateCmd() *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report missing and empty required variables per template",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			bundle, err := loadBundle(cmd.Context(), cfg, flags.bundle)
			if err != nil {
				return err
			}
			tctx, err := flags.transformContext(cfg)
			if err != nil {
				return err
			}
			results := make(map[string]validate.Result, len(bundle.Templates))
			for _, tpl := range bundle.Templates {
				vm := transform.Transform(bundle.Responses, tpl.Mappings, tctx)
				results[tpl.DisplayName] = validate.Variables(vm, tpl.Mappings)
			}
			return printJSON(cmd, results)
		},
	}
	flags.register(cmd)
	return cmd
}

func newReportCmd() *cobra.Command {
	var flags transformFlags
	var xlsxOut, htmlOut string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run a full generation and write the review artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			bundle, err := loadBundle(cmd.Context(), cfg, flags.bundle)
			if err != nil {
				return err
			}
			tctx, err := flags.transformContext(cfg)
			if err != nil {
				return err
			}

			svc := app.NewGenerationService(render.NewTextRenderer(), internal.DefaultLogger)
			result, err := svc.Generate(cmd.Context(), app.GenerateRequest{
				Responses:       bundle.Responses,
				Templates:       bundle.Templates,
				Transform:       tctx,
				RenderSuggested: true,
			})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
				return err
			}
			md := report.Summary(result)
			fmt.Fprint(cmd.OutOrStdout(), md)

			if xlsxOut == "" {
				xlsxOut = filepath.Join(cfg.Paths.OutputDir, "review.xlsx")
			}
			if err := excel.NewReviewWriter().Write(xlsxOut, result); err != nil {
				return err
			}
			if htmlOut != "" {
				if err := os.WriteFile(htmlOut, report.ToHTML(md), 0o644); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "review workbook output path")
	cmd.Flags().StringVar(&htmlOut, "html", "", "HTML summary output path")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the incorporation fixture bundle for local runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = "bundle.json"
			}
			return store.NewFileStore().Save(cmd.Context(), out, testkit.Bundle())
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (default bundle.json)")
	return cmd
}

func findTemplate(templates []selection.Template, id string) (selection.Template, error) {
	if len(templates) == 0 {
		return selection.Template{}, fmt.Errorf("bundle has no templates")
	}
	if id == "" {
		return templates[0], nil
	}
	for _, t := range templates {
		if t.ID.String() == id {
			return t, nil
		}
	}
	return selection.Template{}, fmt.Errorf("%w: %s", core.ErrTemplateNotFound, id)
}

func templateNames(ts []selection.Template) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.DisplayName
	}
	return names
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
