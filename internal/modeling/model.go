package modeling

import (
	"math"
	"strings"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/analysis"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/translation"
)

// BuildPredictiveProfile derives the full predictive profile from a
// translated developer profile. The derivation is a chain of pure weighted
// blends; same input always produces the same output.
func BuildPredictiveProfile(tp translation.TranslatedProfile) PredictiveProfile {
	skills := ComputeSkillVector(tp)
	style := ComputeCodeStyle(tp)
	friction := ComputeFriction(tp, skills, style)
	capabilities := ComputeCapabilities(tp, skills)

	return PredictiveProfile{
		SkillVector:             skills,
		CodeStyleProfile:        style,
		FrictionProfile:         friction,
		CapabilityAssessment:    capabilities,
		SkillGaps:               IdentifySkillGaps(skills),
		LearningRecommendations: RecommendLearningPath(skills, friction),
		DevtoolsSkill:           inferDevtoolsSkill(tp),
		Metadata: ModelMetadata{
			ModelVersion:      modelVersion,
			BasedOnRepos:      tp.Metadata.TotalRepositories,
			DataSource:        "static_analysis_only",
			AnalysisTimestamp: tp.Metadata.AnalysisTimestamp,
		},
	}
}

// ComputeSkillVector blends composition fractions, language percentages,
// coarse skill scores, and quality into the six skill dimensions.
func ComputeSkillVector(tp translation.TranslatedProfile) SkillVector {
	quality := tp.Quality.QualityScore

	pythonShare := tp.Languages["Python"] / 100
	backend := tp.Composition.Backend*backendCompositionWeight +
		pythonShare*backendPythonWeight +
		quality*backendQualityWeight

	frontendShare := (tp.Languages["JavaScript"] +
		tp.Languages["TypeScript"] +
		tp.Languages["HTML"] +
		tp.Languages["CSS"]) / 100
	frontend := tp.Composition.Frontend*frontendCompositionWeight +
		frontendShare*frontendLanguageWeight

	data := tp.Composition.Data*dataCompositionWeight +
		tp.Skills["data_engineering"]*dataEngineeringWeight

	aiML := tp.Skills["ai_ml"]
	if hasAnyLibrary(tp.Libraries, aiVendorLibraries) {
		aiML += aiLibraryBonus
	}

	cloud := tp.Skills["cloud_devops"]

	architecture := tp.TechnicalDepth.DepthScore*architectureDepthWeight +
		quality*architectureQualityWeight +
		math.Min(tp.TechnicalDepth.AvgRepoSize/architectureScaleDivisorKB, 1)*architectureScaleWeight

	return SkillVector{
		Backend:             round3(clamp01(backend)),
		Frontend:            round3(clamp01(frontend)),
		Data:                round3(clamp01(data)),
		AIML:                round3(clamp01(aiML)),
		CloudInfrastructure: round3(clamp01(cloud)),
		Architecture:        round3(clamp01(architecture)),
	}
}

// ComputeCodeStyle infers style preferences from language shares and library
// choices.
func ComputeCodeStyle(tp translation.TranslatedProfile) CodeStyleProfile {
	typeSafety := tp.Languages["TypeScript"] / typeScriptUsageDivisor
	if hasAnyLibrary(tp.Libraries, typingLibraries) {
		typeSafety += typingLibraryBonus
	}

	functionalCount := 0
	for _, e := range tp.Libraries {
		if _, ok := functionalLibraries[strings.ToLower(e.Name)]; ok {
			functionalCount++
		}
	}
	functionalVsOOP := oopStyleValue
	if functionalCount > functionalLibraryThreshold {
		functionalVsOOP = functionalStyleValue
	}

	diverseLangs := 0
	for _, share := range tp.Languages {
		if share > minDiversityPercent {
			diverseLangs++
		}
	}

	return CodeStyleProfile{
		TypeSafetyPreference: round3(clamp01(typeSafety)),
		FunctionalVsOOP:      round3(functionalVsOOP),
		LanguageDiversity:    round3(math.Min(float64(diverseLangs)/languageDiversityDivisor, 1)),
		ComplexityTolerance:  round3(tp.TechnicalDepth.DepthScore),
	}
}

// ComputeFriction scores each technology as 1 minus the blend of the skill
// and style dimensions it relies on, floor-clamped at 0.
func ComputeFriction(tp translation.TranslatedProfile, sv SkillVector, style CodeStyleProfile) FrictionProfile {
	typeExperience := style.TypeSafetyPreference

	react := 1 - (sv.Frontend*reactFrontendWeight +
		typeExperience*reactTypeSafetyWeight +
		style.ComplexityTolerance*reactComplexityWeight)

	vue := 1 - (sv.Frontend*vueFrontendWeight +
		style.LanguageDiversity*vueDiversityWeight)

	typescript := 1 - (typeExperience*typescriptTypeSafetyWeight +
		sv.Frontend*typescriptFrontendWeight +
		style.ComplexityTolerance*typescriptComplexityWeight)

	pythonTyping := 1 - (typeExperience*pythonTypingTypeSafetyWeight +
		sv.Backend*pythonTypingBackendWeight)

	mlProject := 1 - (sv.AIML*mlAIWeight +
		sv.Data*mlDataWeight +
		sv.Backend*mlBackendWeight +
		tp.Quality.QualityScore*mlQualityWeight)

	devops := 1 - (sv.CloudInfrastructure*devopsCloudWeight +
		sv.Backend*devopsBackendWeight)

	microservices := 1 - (sv.Architecture*microservicesArchitectureWeight +
		sv.Backend*microservicesBackendWeight +
		sv.CloudInfrastructure*microservicesCloudWeight)

	fullstack := 1 - (sv.Frontend*fullstackFrontendWeight +
		sv.Backend*fullstackBackendWeight +
		sv.Architecture*fullstackArchitectureWeight)

	mobile := 1 - (sv.Frontend*mobileFrontendWeight +
		style.LanguageDiversity*mobileDiversityWeight +
		sv.Architecture*mobileArchitectureWeight)

	return FrictionProfile{
		ReactFriction:         round3(math.Max(react, 0)),
		VueFriction:           round3(math.Max(vue, 0)),
		TypeScriptFriction:    round3(math.Max(typescript, 0)),
		PythonTypingFriction:  round3(math.Max(pythonTyping, 0)),
		MLProjectFriction:     round3(math.Max(mlProject, 0)),
		DevOpsFriction:        round3(math.Max(devops, 0)),
		MicroservicesFriction: round3(math.Max(microservices, 0)),
		FullstackFriction:     round3(math.Max(fullstack, 0)),
		MobileFriction:        round3(math.Max(mobile, 0)),
	}
}

// inferDevtoolsSkill estimates tool-building aptitude from CLI, advanced
// pattern, and testing library presence plus quality discipline. It feeds
// the capability assessment only and is not a skill-vector dimension.
func inferDevtoolsSkill(tp translation.TranslatedProfile) float64 {
	cliScore := math.Min(countLibraries(tp.Libraries, cliIndicators)/cliIndicatorDivisor, 1)
	advancedScore := math.Min(countLibraries(tp.Libraries, advancedPatternIndicators)/advancedIndicatorDivisor, 1)
	testingScore := math.Min(countLibraries(tp.Libraries, testingIndicators)/testingIndicatorDivisor, 1)

	return round3(cliScore*devtoolsCLIWeight +
		advancedScore*devtoolsAdvancedWeight +
		testingScore*devtoolsTestingWeight +
		tp.Quality.QualityScore*devtoolsQualityWeight)
}

// ComputeCapabilities blends skill dimensions, the devtools helper, and
// quality into the eight project-type success scores.
func ComputeCapabilities(tp translation.TranslatedProfile, sv SkillVector) CapabilityAssessment {
	quality := tp.Quality.QualityScore
	devtools := inferDevtoolsSkill(tp)

	apiService := sv.Backend*apiBackendWeight +
		sv.Architecture*apiArchitectureWeight +
		quality*apiQualityWeight

	cliTool := sv.Backend*cliBackendWeight +
		devtools*cliDevtoolsWeight +
		quality*cliQualityWeight

	dataPipeline := sv.Data*pipelineDataWeight +
		sv.Backend*pipelineBackendWeight +
		sv.Architecture*pipelineArchitectureWeight

	mlModel := sv.AIML*mlModelAIWeight +
		sv.Data*mlModelDataWeight +
		quality*mlModelQualityWeight

	frontendApp := sv.Frontend*frontendAppFrontendWeight +
		quality*frontendAppQualityWeight

	fullstackApp := sv.Frontend*fullstackAppFrontendWeight +
		sv.Backend*fullstackAppBackendWeight +
		sv.Architecture*fullstackAppArchitectureWeight

	infrastructure := sv.CloudInfrastructure*infraCloudWeight +
		sv.Backend*infraBackendWeight +
		sv.Architecture*infraArchitectureWeight

	pluginSystem := sv.Backend*pluginBackendWeight +
		sv.Architecture*pluginArchitectureWeight +
		devtools*pluginDevtoolsWeight

	return CapabilityAssessment{
		APIService:     round3(clamp01(apiService)),
		CLITool:        round3(clamp01(cliTool)),
		DataPipeline:   round3(clamp01(dataPipeline)),
		MLModel:        round3(clamp01(mlModel)),
		FrontendApp:    round3(clamp01(frontendApp)),
		FullstackApp:   round3(clamp01(fullstackApp)),
		Infrastructure: round3(clamp01(infrastructure)),
		PluginSystem:   round3(clamp01(pluginSystem)),
	}
}

// IdentifySkillGaps reports every skill dimension below skillGapThreshold as
// a gap of (1 - score), sorted descending.
func IdentifySkillGaps(sv SkillVector) RankedScores {
	gaps := RankedScores{}
	for _, dim := range skillDimensions(sv) {
		if dim.Score < skillGapThreshold {
			gaps = append(gaps, ScoreEntry{Name: dim.Name, Score: round3(1 - dim.Score)})
		}
	}
	// Stable: equal gaps keep declaration order.
	for i := 1; i < len(gaps); i++ {
		for j := i; j > 0 && gaps[j].Score > gaps[j-1].Score; j-- {
			gaps[j], gaps[j-1] = gaps[j-1], gaps[j]
		}
	}
	return gaps
}

// skillDimensions flattens the vector in its declaration order.
func skillDimensions(sv SkillVector) []ScoreEntry {
	return []ScoreEntry{
		{"backend", sv.Backend},
		{"frontend", sv.Frontend},
		{"data", sv.Data},
		{"ai_ml", sv.AIML},
		{"cloud_infrastructure", sv.CloudInfrastructure},
		{"architecture", sv.Architecture},
	}
}

func hasAnyLibrary(libs analysis.RankedCounts, set map[string]struct{}) bool {
	for _, e := range libs {
		if _, ok := set[strings.ToLower(e.Name)]; ok {
			return true
		}
	}
	return false
}

func countLibraries(libs analysis.RankedCounts, set map[string]struct{}) float64 {
	n := 0
	for _, e := range libs {
		if _, ok := set[strings.ToLower(e.Name)]; ok {
			n++
		}
	}
	return float64(n)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
