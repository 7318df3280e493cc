package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/orderstate"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tiersFile is the YAML rendering of a logo analysis:
//
//	recommendations:
//	  - location: Front
//	    method: 3DEmbroidery
//	    price_tiers:
//	      - {quantity: 48, unit_price: 2.10}
type tiersFile struct {
	Recommendations []struct {
		Location   string `yaml:"location"`
		Method     string `yaml:"method"`
		Size       string `yaml:"size"`
		PriceTiers []struct {
			Quantity  int     `yaml:"quantity"`
			UnitPrice float64 `yaml:"unit_price"`
		} `yaml:"price_tiers"`
	} `yaml:"recommendations"`
}

func (f tiersFile) analysis() entities.LogoAnalysisResult {
	var out entities.LogoAnalysisResult
	for _, r := range f.Recommendations {
		rec := entities.LogoRecommendation{
			Location: entities.LogoLocation(r.Location),
			Method:   entities.LogoMethod(r.Method),
			Size:     entities.LogoSize(r.Size),
		}
		for _, t := range r.PriceTiers {
			rec.PriceTiers = append(rec.PriceTiers, entities.PriceTier{Quantity: t.Quantity, UnitPrice: t.UnitPrice})
		}
		out.Recommendations = append(out.Recommendations, rec)
	}
	return out
}

func loadTiers(path string) (entities.LogoAnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.LogoAnalysisResult{}, fmt.Errorf("read tiers %s: %w", path, err)
	}
	var f tiersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return entities.LogoAnalysisResult{}, fmt.Errorf("parse tiers %s: %w", path, err)
	}
	if len(f.Recommendations) == 0 {
		return entities.LogoAnalysisResult{}, fmt.Errorf("tiers %s: no recommendations", path)
	}
	return f.analysis(), nil
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var (
		quantity  int
		quoteCost float64
		tiersPath string
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Cross-check a quoted logo cost against a logo analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantity <= 0 {
				return orderstate.ErrInvalidQuantity
			}
			if quoteCost <= 0 {
				return orderstate.ErrInvalidQuoteCost
			}
			if tiersPath == "" {
				return errors.New("--tiers is required")
			}
			tun, err := opts.tunables()
			if err != nil {
				return err
			}
			analysis, err := loadTiers(tiersPath)
			if err != nil {
				return err
			}
			res := orderstate.CheckConsistency(analysis, quantity, quoteCost, tun.PricingRules(), time.Now().UTC())
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Order quantity")
	cmd.Flags().Float64Var(&quoteCost, "quote-cost", 0, "Logo cost quoted by the quote agent")
	cmd.Flags().StringVar(&tiersPath, "tiers", "", "YAML file with the logo analysis price tiers")
	return cmd
}
