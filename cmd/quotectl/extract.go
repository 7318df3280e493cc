package main

import (
	"capquote/internal/domain/entities"
	"capquote/internal/extractor"
	"capquote/internal/normalizer"
	"capquote/internal/orderstate"

	"github.com/spf13/cobra"
)

type extractOutput struct {
	Raw        extractor.Result              `json:"raw"`
	Normalized entities.ProductSpecification `json:"normalized"`
}

func newExtractCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file|-]",
		Short: "Extract and normalize a specification from agent text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tun, err := opts.tunables()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res := extractor.New(tun.Extraction.MaxCaptureLength).Extract(text)
			n := normalizer.New(tun.Defaults)
			return printJSON(cmd.OutOrStdout(), extractOutput{Raw: res, Normalized: n.Normalize(res.Specification)})
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status [file|-]",
		Short: "Print the section statuses of the extracted specification",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tun, err := opts.tunables()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			n := normalizer.New(tun.Defaults)
			spec := n.Normalize(extractor.New(tun.Extraction.MaxCaptureLength).Extract(text).Specification)
			versions := 0
			if spec.Pricing != nil {
				versions = 1
			}
			return printJSON(cmd.OutOrStdout(), orderstate.DeriveStatus(spec, versions, n))
		},
	}
}
