package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/calorie-craft/backend/internal/service"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Compute a BMI and its category without contacting the catalog",
	RunE:  runClassify,
}

func init() {
	addBodyFlags(classifyCmd)
	rootCmd.AddCommand(classifyCmd)
}

// addBodyFlags registers the required height and weight flags.
func addBodyFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("height", 0, "height in centimetres")
	cmd.Flags().Float64("weight", 0, "weight in kilograms")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
}

func bodyFlags(cmd *cobra.Command) (float64, float64, error) {
	height, _ := cmd.Flags().GetFloat64("height")
	weight, _ := cmd.Flags().GetFloat64("weight")
	if height <= 0 || weight <= 0 {
		return 0, 0, fmt.Errorf("height and weight must be positive")
	}
	return height, weight, nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	height, weight, err := bodyFlags(cmd)
	if err != nil {
		return err
	}

	result := service.Classify(height, weight)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), result)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "BMI: %s (%s)\n", result.BMI, result.Category)
	return err
}
