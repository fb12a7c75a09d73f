package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/ShelterSim_Go/internal/catalog"
	"github.com/osse101/ShelterSim_Go/internal/utils"
)

const (
	sectionActions = "actions"
	sectionItems   = "items"
	sectionBreeds  = "breeds"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "catalog [actions|items|breeds]",
		Short:     "List care actions, shop items and breeds",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{sectionActions, sectionItems, sectionBreeds},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}

			sections := []string{sectionActions, sectionItems, sectionBreeds}
			if len(args) == 1 {
				sections = args
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, s := range sections {
				if i > 0 {
					fmt.Fprintln(tw)
				}
				switch s {
				case sectionActions:
					printActions(tw)
				case sectionItems:
					printItems(tw, cat)
				case sectionBreeds:
					printBreeds(tw, cat)
				}
			}
			return tw.Flush()
		},
	}
}

func printActions(w io.Writer) {
	fmt.Fprintln(w, "ACTION\tENERGY\tANIMAL ENERGY\tHEALTH\tHAPPINESS\tREADINESS\tNEEDS")
	for _, def := range catalog.Actions() {
		var needs []string
		for _, item := range def.Cost.RequiredItems {
			needs = append(needs, utils.Humanize(item))
		}
		if def.Cost.MoneyRequired > 0 {
			needs = append(needs, fmt.Sprintf("$%d", def.Cost.MoneyRequired))
		}
		if req := def.Cost.SkillRequirement; req != nil {
			needs = append(needs, fmt.Sprintf("%s %d", req.Skill, req.Level))
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%+d\t%+d\t%+d\t%s\n",
			def.Name, def.Cost.PlayerEnergy, def.Cost.AnimalEnergy,
			def.Effect.Health, def.Effect.Happiness, def.Effect.AdoptionReadiness,
			strings.Join(needs, ", "))
	}
}

func printItems(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "ITEM\tCATEGORY\tPRICE\tMAX\tLEVEL\tDAY\tDESCRIPTION")
	for _, item := range cat.ShopItems {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			item.Name, utils.Humanize(string(item.Category)), item.Price,
			item.MaxQuantity, item.RequiresLevel, item.UnlockDay, item.Description)
	}
}

func printBreeds(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "BREED\tSIZE\tENERGY\tTRAITS")
	for _, b := range cat.Breeds {
		traits := make([]string, len(b.SpecialTraits))
		for i, t := range b.SpecialTraits {
			traits[i] = utils.Humanize(t)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			b.Name, utils.Humanize(string(b.Size)), b.BaseEnergy, strings.Join(traits, ", "))
	}
}
