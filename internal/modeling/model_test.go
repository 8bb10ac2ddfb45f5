package modeling

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/analysis"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/translation"
)

func backendHeavyProfile() translation.TranslatedProfile {
	return translation.TranslatedProfile{
		Languages: map[string]float64{"Python": 80, "Shell": 20},
		Libraries: analysis.RankedCounts{
			{Name: "flask", Count: 5}, {Name: "requests", Count: 3}, {Name: "pytest", Count: 2}, {Name: "click", Count: 1},
		},
		Frameworks: analysis.RankedCounts{{Name: "pytest", Count: 1}, {Name: "Docker", Count: 1}},
		Composition: translation.Composition{
			Backend: 0.8, Frontend: 0.1, Data: 0.1,
		},
		Skills: map[string]float64{"devtools_automation": 0.5},
		TechnicalDepth: translation.TechnicalDepth{
			DepthScore: 0.6, AvgRepoSize: 300, MaxRepoSize: 500, Level: "intermediate",
		},
		Quality: translation.Quality{
			AvgTestCoverage: 80, QualityScore: 0.8, Rating: "excellent",
		},
		Metadata: translation.Metadata{
			TotalRepositories: 4, TotalCommits: 120,
			AnalysisTimestamp: "2024-06-01T12:00:00Z",
		},
	}
}

func assertUnitRange(t *testing.T, name string, v float64) {
	t.Helper()
	assert.GreaterOrEqual(t, v, 0.0, name)
	assert.LessOrEqual(t, v, 1.0, name)
}

func TestComputeSkillVectorRanges(t *testing.T) {
	profiles := []translation.TranslatedProfile{
		{}, // empty
		backendHeavyProfile(),
		{
			Languages:   map[string]float64{"TypeScript": 60, "HTML": 20, "CSS": 20},
			Composition: translation.Composition{Frontend: 0.9, Backend: 0.1},
			Quality:     translation.Quality{QualityScore: 1},
			TechnicalDepth: translation.TechnicalDepth{
				DepthScore: 1, AvgRepoSize: 9000,
			},
		},
	}

	for i, tp := range profiles {
		sv := ComputeSkillVector(tp)
		assertUnitRange(t, "backend", sv.Backend)
		assertUnitRange(t, "frontend", sv.Frontend)
		assertUnitRange(t, "data", sv.Data)
		assertUnitRange(t, "ai_ml", sv.AIML)
		assertUnitRange(t, "cloud_infrastructure", sv.CloudInfrastructure)
		assertUnitRange(t, "architecture", sv.Architecture)
		_ = i
	}
}

func TestComputeSkillVectorAILibraryBonus(t *testing.T) {
	without := ComputeSkillVector(translation.TranslatedProfile{})
	with := ComputeSkillVector(translation.TranslatedProfile{
		Libraries: analysis.RankedCounts{{Name: "openai", Count: 2}},
	})

	assert.Zero(t, without.AIML)
	assert.Equal(t, aiLibraryBonus, with.AIML)
}

func TestComputeCodeStyle(t *testing.T) {
	t.Run("typing libraries raise type safety", func(t *testing.T) {
		style := ComputeCodeStyle(translation.TranslatedProfile{
			Languages: map[string]float64{"TypeScript": 25},
			Libraries: analysis.RankedCounts{{Name: "pydantic", Count: 1}},
		})
		// 25/50 + 0.3
		assert.Equal(t, 0.8, style.TypeSafetyPreference)
	})

	t.Run("functional toggle needs more than two indicator libraries", func(t *testing.T) {
		oop := ComputeCodeStyle(translation.TranslatedProfile{
			Libraries: analysis.RankedCounts{{Name: "functools", Count: 1}, {Name: "itertools", Count: 1}},
		})
		assert.Equal(t, oopStyleValue, oop.FunctionalVsOOP)

		functional := ComputeCodeStyle(translation.TranslatedProfile{
			Libraries: analysis.RankedCounts{{Name: "functools", Count: 1}, {Name: "itertools", Count: 1}, {Name: "reduce", Count: 1}},
		})
		assert.Equal(t, functionalStyleValue, functional.FunctionalVsOOP)
	})

	t.Run("diversity counts languages above one percent", func(t *testing.T) {
		style := ComputeCodeStyle(translation.TranslatedProfile{
			Languages: map[string]float64{
				"Python": 50, "JavaScript": 30, "Shell": 19.5, "Markdown": 0.5,
			},
		})
		assert.Equal(t, 0.5, style.LanguageDiversity)
	})
}

func TestComputeFrictionFloorsAtZero(t *testing.T) {
	tp := translation.TranslatedProfile{
		Languages:      map[string]float64{"TypeScript": 100},
		Libraries:      analysis.RankedCounts{{Name: "pydantic", Count: 1}},
		Composition:    translation.Composition{Frontend: 1},
		Quality:        translation.Quality{QualityScore: 1},
		TechnicalDepth: translation.TechnicalDepth{DepthScore: 1, AvgRepoSize: 9000},
	}
	sv := ComputeSkillVector(tp)
	style := ComputeCodeStyle(tp)
	friction := ComputeFriction(tp, sv, style)

	for name, v := range map[string]float64{
		"react":         friction.ReactFriction,
		"vue":           friction.VueFriction,
		"typescript":    friction.TypeScriptFriction,
		"python_typing": friction.PythonTypingFriction,
		"ml_project":    friction.MLProjectFriction,
		"devops":        friction.DevOpsFriction,
		"microservices": friction.MicroservicesFriction,
		"fullstack":     friction.FullstackFriction,
		"mobile":        friction.MobileFriction,
	} {
		assertUnitRange(t, name, v)
	}
}

func TestInferDevtoolsSkill(t *testing.T) {
	t.Run("empty profile still reflects quality", func(t *testing.T) {
		skill := inferDevtoolsSkill(translation.TranslatedProfile{
			Quality: translation.Quality{QualityScore: 1},
		})
		assert.Equal(t, devtoolsQualityWeight, skill)
	})

	t.Run("indicator saturation", func(t *testing.T) {
		skill := inferDevtoolsSkill(translation.TranslatedProfile{
			Libraries: analysis.RankedCounts{
				{Name: "click", Count: 1}, {Name: "typer", Count: 1}, {Name: "rich", Count: 1},
				{Name: "functools", Count: 1}, {Name: "itertools", Count: 1}, {Name: "collections", Count: 1}, {Name: "heapq", Count: 1},
				{Name: "pytest", Count: 1}, {Name: "unittest", Count: 1},
			},
			Quality: translation.Quality{QualityScore: 1},
		})
		// All three indicator groups saturated plus full quality.
		assert.Equal(t, 1.0, skill)
	})
}

func TestComputeCapabilitiesMLBelowAPI(t *testing.T) {
	// Strong backend, zero AI: ml_model must trail api_service.
	tp := backendHeavyProfile()
	sv := ComputeSkillVector(tp)
	caps := ComputeCapabilities(tp, sv)

	assert.Less(t, caps.MLModel, caps.APIService)

	for name, v := range map[string]float64{
		"api_service":    caps.APIService,
		"cli_tool":       caps.CLITool,
		"data_pipeline":  caps.DataPipeline,
		"ml_model":       caps.MLModel,
		"frontend_app":   caps.FrontendApp,
		"fullstack_app":  caps.FullstackApp,
		"infrastructure": caps.Infrastructure,
		"plugin_system":  caps.PluginSystem,
	} {
		assertUnitRange(t, name, v)
	}
}

func TestIdentifySkillGaps(t *testing.T) {
	sv := SkillVector{
		Backend:             0.8,
		Frontend:            0.2,
		Data:                0.45,
		AIML:                0.1,
		CloudInfrastructure: 0.5, // at threshold, not a gap
		Architecture:        0.6,
	}

	gaps := IdentifySkillGaps(sv)
	require.Len(t, gaps, 3)

	// Sorted descending by gap severity.
	assert.Equal(t, ScoreEntry{Name: "ai_ml", Score: 0.9}, gaps[0])
	assert.Equal(t, ScoreEntry{Name: "frontend", Score: 0.8}, gaps[1])
	assert.Equal(t, ScoreEntry{Name: "data", Score: 0.55}, gaps[2])
}

func TestBuildPredictiveProfileMetadata(t *testing.T) {
	tp := backendHeavyProfile()
	pp := BuildPredictiveProfile(tp)

	assert.Equal(t, modelVersion, pp.Metadata.ModelVersion)
	assert.Equal(t, 4, pp.Metadata.BasedOnRepos)
	assert.Equal(t, "static_analysis_only", pp.Metadata.DataSource)
	assert.Equal(t, tp.Metadata.AnalysisTimestamp, pp.Metadata.AnalysisTimestamp)
}

func TestBuildPredictiveProfileDeterminism(t *testing.T) {
	tp := backendHeavyProfile()

	first, err := json.Marshal(BuildPredictiveProfile(tp))
	require.NoError(t, err)
	second, err := json.Marshal(BuildPredictiveProfile(tp))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRankedScoresJSONRoundTrip(t *testing.T) {
	rs := RankedScores{{"ai_ml", 0.9}, {"frontend", 0.75}}

	payload, err := json.Marshal(rs)
	require.NoError(t, err)
	assert.Equal(t, `{"ai_ml":0.9,"frontend":0.75}`, string(payload))

	var decoded RankedScores
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, rs, decoded)
}
