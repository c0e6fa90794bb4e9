package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pageza/calorie-craft/backend/config"
	"github.com/pageza/calorie-craft/backend/internal/service"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Compute a BMI and list recipes for its category",
	RunE:  runRecommend,
}

var recipeCmd = &cobra.Command{
	Use:   "recipe <id>",
	Short: "Show the details of one catalog recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipe,
}

func init() {
	addBodyFlags(recommendCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(recipeCmd)
}

func newRecommendationService() (*service.RecommendationService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	catalog := service.NewCatalogService(cfg, service.WithLogger(slog.Default()))
	return service.NewRecommendationService(catalog), nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	height, weight, err := bodyFlags(cmd)
	if err != nil {
		return err
	}

	svc, err := newRecommendationService()
	if err != nil {
		return err
	}

	result, err := svc.CalculateAndRecommend(cmd.Context(), height, weight)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "BMI: %s (%s)\n\n", result.BMI, result.Category)
	if len(result.Recipes) == 0 {
		fmt.Fprintln(out, "No recipes found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCALORIES\tREADY (MIN)")
	for _, r := range result.Recipes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", r.ID, r.Title, r.Calories, r.ReadyInMinutes)
	}
	return tw.Flush()
}

func runRecipe(cmd *cobra.Command, args []string) error {
	svc, err := newRecommendationService()
	if err != nil {
		return err
	}

	detail, err := svc.GetRecipeDetails(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), detail)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (#%d)\n", detail.Title, detail.ID)
	fmt.Fprintf(out, "Calories: %s  Servings: %d  Ready in: %d min\n", detail.Calories, detail.Servings, detail.ReadyInMinutes)
	if detail.SourceURL != "" {
		fmt.Fprintf(out, "Source: %s\n", detail.SourceURL)
	}

	fmt.Fprintln(out, "\nIngredients:")
	for _, ing := range detail.Ingredients {
		fmt.Fprintf(out, "  - %s\n", ing)
	}

	if len(detail.AnalyzedInstructions) > 0 {
		fmt.Fprintln(out, "\nSteps:")
		for _, step := range detail.AnalyzedInstructions {
			fmt.Fprintf(out, "  %d. %s\n", step.Number, step.Step)
		}
	}
	return nil
}
