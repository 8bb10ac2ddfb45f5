package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/modeling"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/pipeline"
)

func main() {
	root := &cobra.Command{
		Use:   "profilectl",
		Short: "Developer profiling pipeline over repository dumps",
		Long: `profilectl runs the developer profiling pipeline on a repository dump:
parse, per-repository analysis, translation into a developer profile, and
predictive modeling of skills, friction, and project capabilities.`,
		SilenceUsage: true,
	}

	root.AddCommand(newAnalyzeCommand())
	root.AddCommand(newPredictCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "analyze <dump-file>",
		Short: "Run the full pipeline on a repository dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dump, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read dump: %w", err)
			}

			result := pipeline.Run(string(dump))

			if err := result.WriteArtifacts(outDir); err != nil {
				return err
			}

			printProfileSummary(result.Predictive)
			fmt.Printf("\nArtifacts written to %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the JSON artifacts")

	return cmd
}

func newPredictCommand() *cobra.Command {
	var projectType string

	cmd := &cobra.Command{
		Use:   "predict <translated-profile>",
		Short: "Predict project success from a translated profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, err := pipeline.LoadTranslated(args[0])
			if err != nil {
				return err
			}

			pp := modeling.BuildPredictiveProfile(tp)
			prediction := modeling.PredictProjectSuccess(tp, pp, projectType)

			payload, err := json.MarshalIndent(prediction, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode prediction: %w", err)
			}
			fmt.Println(string(payload))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectType, "project", "p", "api_service", "project type to assess")

	return cmd
}

// printProfileSummary renders the predictive profile as score bars, colored
// by how favorable each score is.
func printProfileSummary(pp modeling.PredictiveProfile) {
	bold := color.New(color.Bold)

	fmt.Println()
	bold.Println(strings.Repeat("=", 70))
	bold.Println("PREDICTIVE PROFILE")
	bold.Println(strings.Repeat("=", 70))

	bold.Println("\nSKILL VECTOR:")
	printScoreLine("backend", pp.SkillVector.Backend)
	printScoreLine("frontend", pp.SkillVector.Frontend)
	printScoreLine("data", pp.SkillVector.Data)
	printScoreLine("ai_ml", pp.SkillVector.AIML)
	printScoreLine("cloud_infrastructure", pp.SkillVector.CloudInfrastructure)
	printScoreLine("architecture", pp.SkillVector.Architecture)
	printScoreLine("devtools (inferred)", pp.DevtoolsSkill)

	bold.Println("\nCODE STYLE PROFILE:")
	printScoreLine("type_safety_preference", pp.CodeStyleProfile.TypeSafetyPreference)
	printScoreLine("functional_vs_oop", pp.CodeStyleProfile.FunctionalVsOOP)
	printScoreLine("language_diversity", pp.CodeStyleProfile.LanguageDiversity)
	printScoreLine("complexity_tolerance", pp.CodeStyleProfile.ComplexityTolerance)

	bold.Println("\nFRICTION PROFILE (lower = easier):")
	printFrictionLine("react", pp.FrictionProfile.ReactFriction)
	printFrictionLine("vue", pp.FrictionProfile.VueFriction)
	printFrictionLine("typescript", pp.FrictionProfile.TypeScriptFriction)
	printFrictionLine("python_typing", pp.FrictionProfile.PythonTypingFriction)
	printFrictionLine("ml_project", pp.FrictionProfile.MLProjectFriction)
	printFrictionLine("devops", pp.FrictionProfile.DevOpsFriction)
	printFrictionLine("microservices", pp.FrictionProfile.MicroservicesFriction)
	printFrictionLine("fullstack", pp.FrictionProfile.FullstackFriction)
	printFrictionLine("mobile", pp.FrictionProfile.MobileFriction)

	bold.Println("\nCAPABILITY ASSESSMENT:")
	printCapabilityLine("api_service", pp.CapabilityAssessment.APIService)
	printCapabilityLine("cli_tool", pp.CapabilityAssessment.CLITool)
	printCapabilityLine("data_pipeline", pp.CapabilityAssessment.DataPipeline)
	printCapabilityLine("ml_model", pp.CapabilityAssessment.MLModel)
	printCapabilityLine("frontend_app", pp.CapabilityAssessment.FrontendApp)
	printCapabilityLine("fullstack_app", pp.CapabilityAssessment.FullstackApp)
	printCapabilityLine("infrastructure", pp.CapabilityAssessment.Infrastructure)
	printCapabilityLine("plugin_system", pp.CapabilityAssessment.PluginSystem)

	if len(pp.SkillGaps) > 0 {
		bold.Println("\nSKILL GAPS (growth opportunities):")
		gaps := pp.SkillGaps
		if len(gaps) > 3 {
			gaps = gaps[:3]
		}
		for _, gap := range gaps {
			color.Yellow("  %s: gap of %.3f", gap.Name, gap.Score)
		}
	}

	if len(pp.LearningRecommendations) > 0 {
		bold.Println("\nRECOMMENDED LEARNING PATH:")
		recs := pp.LearningRecommendations
		if len(recs) > 3 {
			recs = recs[:3]
		}
		for _, rec := range recs {
			fmt.Printf("  %s: friction %.2f\n", rec.Area, rec.Friction)
			fmt.Printf("     -> %s\n", strings.Join(rec.SuggestedTech, ", "))
		}
	}
}

func printScoreLine(name string, score float64) {
	fmt.Printf("  %s %.3f %s\n", padDots(name), score, scoreBar(score))
}

func printFrictionLine(name string, friction float64) {
	c := color.New(color.FgRed)
	switch {
	case friction < 0.3:
		c = color.New(color.FgGreen)
	case friction < 0.6:
		c = color.New(color.FgYellow)
	}
	c.Printf("  %s %.3f %s\n", padDots(name), friction, scoreBar(friction))
}

func printCapabilityLine(name string, score float64) {
	c := color.New(color.FgRed)
	switch {
	case score > 0.7:
		c = color.New(color.FgGreen)
	case score > 0.4:
		c = color.New(color.FgYellow)
	}
	c.Printf("  %s %.3f %s\n", padDots(name), score, scoreBar(score))
}

func padDots(name string) string {
	if len(name) >= 30 {
		return name
	}
	return name + strings.Repeat(".", 30-len(name))
}

func scoreBar(score float64) string {
	n := int(score * 20)
	if n < 0 {
		n = 0
	}
	if n > 20 {
		n = 20
	}
	return strings.Repeat("█", n)
}
