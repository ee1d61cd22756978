package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/recommend"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

type recommendOptions struct {
	role       string
	experience string
	budget     int
	focus      []string
	industry   string
	format     string
	asJSON     bool
}

func newRecommendCmd(root *rootOptions) *cobra.Command {
	opts := &recommendOptions{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a tool stack for a profile",
		Example: `  stackctl recommend --role content-creator --budget 100 --focus video,writing
  stackctl recommend --role developer --budget 50 --focus analytics --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, root, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.role, "role", "", "professional role")
	f.StringVar(&opts.experience, "experience", "", "AI experience level")
	f.IntVar(&opts.budget, "budget", 0, "monthly budget in dollars (50, 100, 200 or 500)")
	f.StringSliceVar(&opts.focus, "focus", nil, "focus areas, comma separated")
	f.StringVar(&opts.industry, "industry", "", "industry")
	f.StringVar(&opts.format, "format", string(services.ExportText), "output format: text or markdown")
	f.BoolVar(&opts.asJSON, "json", false, "print the stack as JSON")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("focus")
	return cmd
}

func runRecommend(cmd *cobra.Command, root *rootOptions, opts *recommendOptions) error {
	draft := models.DraftProfile{
		Role:       models.Role(opts.role),
		Experience: models.Experience(opts.experience),
		Budget:     opts.budget,
		Industry:   models.Industry(opts.industry),
	}
	// Flags name the set directly, so a repeated value is not a toggle.
	for _, f := range opts.focus {
		focus := models.Focus(strings.TrimSpace(f))
		if draft.HasFocus(focus) {
			continue
		}
		if err := draft.ToggleFocus(focus); err != nil {
			return err
		}
	}
	profile, err := draft.Complete()
	if err != nil {
		return err
	}

	c, err := root.loadCatalog()
	if err != nil {
		return err
	}
	stack := recommend.New(c).Recommend(profile)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stack)
	}
	text, err := services.RenderStack(stack, services.ExportFormat(opts.format))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}
