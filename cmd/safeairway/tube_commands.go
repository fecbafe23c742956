package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"safeairway/internal/bedside"
	"safeairway/internal/tubesize"
)

func newTubeCommand() *cobra.Command {
	tubeCmd := &cobra.Command{
		Use:         "tube",
		Short:       "Tracheostomy tube reference lookups",
		Annotations: skipConfig,
	}

	tubeCmd.AddCommand(newTubeODCommand())
	tubeCmd.AddCommand(newTubeSuctionCommand())
	tubeCmd.AddCommand(newTubeETTDepthCommand())
	tubeCmd.AddCommand(newTubeInsertDepthCommand())
	tubeCmd.AddCommand(newTubeSizesCommand())

	return tubeCmd
}

func parseSizeArg(value string) (float64, error) {
	size, ok := tubesize.ParseSize(value)
	if !ok || size <= 0 {
		return 0, fmt.Errorf("invalid tube size %q", value)
	}
	return size, nil
}

func newTubeODCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "od <manufacturer> <size>",
		Short: "Look up the standard outer diameter of a tube",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSizeArg(args[1])
			if err != nil {
				return err
			}
			text := bedside.NotAvailable
			if od, ok := catalog().OuterDiameter(args[0], size); ok {
				text = strconv.FormatFloat(od, 'f', 1, 64) + " mm"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s): OD %s\n",
				args[0], tubesize.FormatSize(size), tubesize.FamilyOf(args[0]), text)
			return nil
		},
	}
}

func newTubeSuctionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suction <size>",
		Short: "Suggest a suction catheter size for a tube size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSizeArg(args[0])
			if err != nil {
				return err
			}
			text := bedside.NotAvailable
			if fr, ok := catalog().SuctionCatheterSize(size); ok {
				text = strconv.Itoa(fr) + " Fr"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Suction catheter for %s: %s\n", tubesize.FormatSize(size), text)
			return nil
		},
	}
}

func newTubeETTDepthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ett-depth <ett-size>",
		Short: "Look up the suction depth for an endotracheal tube",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if size, ok := tubesize.ParseSize(key); ok {
				key = tubesize.FormatSize(size)
			}
			text := bedside.NotAvailable
			if depth, ok := catalog().ETTSuctionDepth(key); ok {
				text = depth + " cm"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ETT %s suction depth: %s\n", key, text)
			return nil
		},
	}
}

func newTubeInsertDepthCommand() *cobra.Command {
	var familyFlag string
	var variantFlag string
	var flextend bool

	cmd := &cobra.Command{
		Use:   "insert-depth <size>",
		Short: "Compute the standard suction catheter insertion depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, ok := tubesize.ParseFamily(familyFlag)
			if !ok {
				return fmt.Errorf("unknown tube family %q (want bivona, shiley, tracoe, or custom)", familyFlag)
			}
			variant, ok := tubesize.ParseVariant(variantFlag)
			if !ok {
				return fmt.Errorf("unknown variant %q (want neonatal, pediatric, pediatric-extra-long, or pediatric-plus)", variantFlag)
			}
			size, err := parseSizeArg(args[0])
			if err != nil {
				return err
			}
			depth, ok := catalog().InsertDepthFor(family, variant, size, flextend)
			if !ok {
				return errors.New("no shaft length data for that tube")
			}
			label := fmt.Sprintf("%s %s %s", family, variant, tubesize.FormatSize(size))
			if flextend {
				label += " flextend"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s insertion depth: %s cm\n", label, strconv.FormatFloat(depth, 'f', 1, 64))
			return nil
		},
	}

	cmd.Flags().StringVarP(&familyFlag, "family", "f", "bivona", "Tube family")
	cmd.Flags().StringVar(&variantFlag, "variant", "pediatric", "Shaft length table")
	cmd.Flags().BoolVar(&flextend, "flextend", false, "Add the Bivona Flextend proximal shaft")
	return cmd
}

func newTubeSizesCommand() *cobra.Command {
	var variantFlag string

	cmd := &cobra.Command{
		Use:   "sizes <family>",
		Short: "List sizes, tube types and cuffs offered for a family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, ok := tubesize.ParseFamily(args[0])
			if !ok {
				return fmt.Errorf("unknown tube family %q (want bivona, shiley, tracoe, or custom)", args[0])
			}
			cat := catalog()
			pairs := [][2]string{{"Family", family.String()}}

			switch {
			case cmd.Flags().Changed("variant"):
				variant, ok := tubesize.ParseVariant(variantFlag)
				if !ok {
					return fmt.Errorf("unknown variant %q (want neonatal, pediatric, pediatric-extra-long, or pediatric-plus)", variantFlag)
				}
				sizes, ok := cat.Sizes(family, variant)
				if !ok {
					return fmt.Errorf("%s tubes have no %s variant", family, variant)
				}
				pairs = append(pairs, [2]string{"Sizes (" + variant.String() + ")", strings.Join(sizes, ", ")})
			case family == tubesize.FamilyCustom:
				sizes, _ := cat.Sizes(family, tubesize.VariantPediatric)
				pairs = append(pairs, [2]string{"Sizes", strings.Join(sizes, ", ")})
			default:
				for _, variant := range cat.Variants(family) {
					sizes, _ := cat.Sizes(family, variant)
					pairs = append(pairs, [2]string{"Sizes (" + variant.String() + ")", strings.Join(sizes, ", ")})
				}
			}

			pairs = append(pairs,
				[2]string{"Tube types", strings.Join(cat.TubeTypes(family), ", ")},
				[2]string{"Cuffs", strings.Join(cat.CuffTypes(family), ", ")},
			)
			if family == tubesize.FamilyCustom {
				pairs = append(pairs, [2]string{"Face plates", strings.Join(cat.FacePlateTypes(), ", ")})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderFields(pairs))
			return nil
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", "", "Only list sizes for one shaft length table")
	return cmd
}
