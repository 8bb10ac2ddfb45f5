package modeling

import (
	"fmt"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/translation"
)

// RecommendLearningPath applies the fixed rule list over the skill vector
// and friction profile. An empty result means no rule fired.
func RecommendLearningPath(sv SkillVector, friction FrictionProfile) []Recommendation {
	recommendations := []Recommendation{}

	// Strong backend, weak frontend: fullstack opportunity.
	if sv.Backend > strongBackendThreshold && sv.Frontend < weakFrontendThreshold {
		framework := "Vue"
		if friction.ReactFriction < reactOverVueFriction {
			framework = "React"
		}
		recommendations = append(recommendations, Recommendation{
			Area:              "Frontend Development",
			Priority:          "high",
			Friction:          friction.ReactFriction,
			Rationale:         "Strong backend provides foundation for fullstack capability",
			SuggestedTech:     []string{framework, "TypeScript", "Tailwind CSS"},
			EstimatedFriction: friction.ReactFriction,
		})
	}

	// Strong data, weak AI/ML: ML opportunity.
	if sv.Data > strongDataThreshold && sv.AIML < weakAIThreshold {
		recommendations = append(recommendations, Recommendation{
			Area:              "AI/ML Engineering",
			Priority:          "medium",
			Friction:          friction.MLProjectFriction,
			Rationale:         "Data skills provide foundation for ML work",
			SuggestedTech:     []string{"OpenAI API", "LangChain", "Vector DBs"},
			EstimatedFriction: friction.MLProjectFriction,
		})
	}

	// Strong backend, weak cloud: infrastructure opportunity.
	if sv.Backend > strongBackendThreshold && sv.CloudInfrastructure < weakCloudThreshold {
		recommendations = append(recommendations, Recommendation{
			Area:              "Cloud Infrastructure",
			Priority:          "medium",
			Friction:          friction.DevOpsFriction,
			Rationale:         "Backend expertise needs cloud deployment skills",
			SuggestedTech:     []string{"Docker", "AWS/Vercel", "CI/CD"},
			EstimatedFriction: friction.DevOpsFriction,
		})
	}

	return recommendations
}

// PredictProjectSuccess assesses one project type against an already built
// predictive profile. Unknown project types fall back to the documented
// default success and friction scores.
func PredictProjectSuccess(tp translation.TranslatedProfile, pp PredictiveProfile, projectType string) ProjectPrediction {
	success, ok := capabilityForType(pp.CapabilityAssessment, projectType)
	if !ok {
		success = defaultSuccessScore
	}
	friction, ok := frictionForType(pp.FrictionProfile, projectType)
	if !ok {
		friction = defaultFrictionScore
	}

	risk := "high"
	switch {
	case success > lowRiskThreshold:
		risk = "low"
	case success > mediumRiskThreshold:
		risk = "medium"
	}

	tensions := []string{}
	if success < lowCapabilityTension {
		tensions = append(tensions, fmt.Sprintf("Low capability match (%.2f) - significant skill gap", success))
	}
	if friction > highFrictionTension {
		tensions = append(tensions, fmt.Sprintf("High friction (%.2f) - steep learning curve", friction))
	}
	if tp.Quality.QualityScore < lowQualityTension {
		tensions = append(tensions, "Low test coverage may impact production quality")
	}

	return ProjectPrediction{
		ProjectType:       projectType,
		SuccessLikelihood: round3(success),
		FrictionScore:     round3(friction),
		RiskLevel:         risk,
		TensionPoints:     tensions,
		SkillGaps:         projectSkillGaps(pp.SkillVector, projectType),
	}
}

// capabilityForType maps a project-type tag to its capability score.
func capabilityForType(caps CapabilityAssessment, projectType string) (float64, bool) {
	switch projectType {
	case "api_service":
		return caps.APIService, true
	case "cli_tool":
		return caps.CLITool, true
	case "data_pipeline":
		return caps.DataPipeline, true
	case "ml_model":
		return caps.MLModel, true
	case "frontend_app":
		return caps.FrontendApp, true
	case "fullstack_app":
		return caps.FullstackApp, true
	case "infrastructure":
		return caps.Infrastructure, true
	case "plugin_system":
		return caps.PluginSystem, true
	}
	return 0, false
}

// frictionForType maps a project-type tag to its most relevant friction
// dimension. Types without a mapping use the default friction.
func frictionForType(friction FrictionProfile, projectType string) (float64, bool) {
	switch projectType {
	case "frontend_app":
		return friction.ReactFriction, true
	case "fullstack_app":
		return friction.FullstackFriction, true
	case "ml_model":
		return friction.MLProjectFriction, true
	case "infrastructure":
		return friction.DevOpsFriction, true
	case "cli_tool":
		return friction.PythonTypingFriction, true
	}
	return 0, false
}

// projectSkillGaps reports the skill dimensions falling short of the
// project type's pinned expectations.
func projectSkillGaps(sv SkillVector, projectType string) []string {
	gaps := []string{}
	for _, st := range projectGapThresholds[projectType] {
		score := RankedScores(skillDimensions(sv)).Get(st.Skill)
		if score < st.Threshold {
			gaps = append(gaps, fmt.Sprintf("%s: %.2f (needs >=%g)", st.Skill, score, st.Threshold))
		}
	}
	return gaps
}
