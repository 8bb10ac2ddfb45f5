package modeling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/translation"
)

func TestRecommendLearningPath(t *testing.T) {
	t.Run("no rule fires on balanced profile", func(t *testing.T) {
		sv := SkillVector{Backend: 0.5, Frontend: 0.5, Data: 0.3, AIML: 0.5, CloudInfrastructure: 0.5}
		assert.Empty(t, RecommendLearningPath(sv, FrictionProfile{}))
	})

	t.Run("strong backend weak frontend suggests fullstack", func(t *testing.T) {
		sv := SkillVector{Backend: 0.8, Frontend: 0.1, CloudInfrastructure: 0.5}
		recs := RecommendLearningPath(sv, FrictionProfile{ReactFriction: 0.3})

		require.Len(t, recs, 1)
		assert.Equal(t, "Frontend Development", recs[0].Area)
		assert.Equal(t, "high", recs[0].Priority)
		// Low React friction picks React over Vue.
		assert.Equal(t, []string{"React", "TypeScript", "Tailwind CSS"}, recs[0].SuggestedTech)
	})

	t.Run("high react friction picks vue", func(t *testing.T) {
		sv := SkillVector{Backend: 0.8, Frontend: 0.1, CloudInfrastructure: 0.5}
		recs := RecommendLearningPath(sv, FrictionProfile{ReactFriction: 0.7})

		require.Len(t, recs, 1)
		assert.Equal(t, "Vue", recs[0].SuggestedTech[0])
	})

	t.Run("strong data weak ai suggests ml", func(t *testing.T) {
		sv := SkillVector{Data: 0.6, AIML: 0.1, Backend: 0.3, CloudInfrastructure: 0.5}
		recs := RecommendLearningPath(sv, FrictionProfile{MLProjectFriction: 0.5})

		require.Len(t, recs, 1)
		assert.Equal(t, "AI/ML Engineering", recs[0].Area)
		assert.Equal(t, "medium", recs[0].Priority)
	})

	t.Run("strong backend weak cloud suggests infrastructure", func(t *testing.T) {
		sv := SkillVector{Backend: 0.8, Frontend: 0.5, CloudInfrastructure: 0.1}
		recs := RecommendLearningPath(sv, FrictionProfile{DevOpsFriction: 0.4})

		require.Len(t, recs, 1)
		assert.Equal(t, "Cloud Infrastructure", recs[0].Area)
		assert.Equal(t, []string{"Docker", "AWS/Vercel", "CI/CD"}, recs[0].SuggestedTech)
	})

	t.Run("multiple rules fire together", func(t *testing.T) {
		sv := SkillVector{Backend: 0.8, Frontend: 0.1, Data: 0.6, AIML: 0.1, CloudInfrastructure: 0.1}
		recs := RecommendLearningPath(sv, FrictionProfile{})
		assert.Len(t, recs, 3)
	})
}

func TestPredictProjectSuccess(t *testing.T) {
	tp := backendHeavyProfile()
	pp := BuildPredictiveProfile(tp)

	t.Run("known type uses its capability score", func(t *testing.T) {
		prediction := PredictProjectSuccess(tp, pp, "api_service")

		assert.Equal(t, "api_service", prediction.ProjectType)
		assert.Equal(t, pp.CapabilityAssessment.APIService, prediction.SuccessLikelihood)
	})

	t.Run("unknown type falls back to defaults", func(t *testing.T) {
		prediction := PredictProjectSuccess(tp, pp, "quantum_compiler")

		assert.Equal(t, defaultSuccessScore, prediction.SuccessLikelihood)
		assert.Equal(t, defaultFrictionScore, prediction.FrictionScore)
		assert.Equal(t, "medium", prediction.RiskLevel)
	})

	t.Run("risk buckets", func(t *testing.T) {
		// Weak everything drives ml_model success low.
		weak := translation.TranslatedProfile{}
		weakPP := BuildPredictiveProfile(weak)
		high := PredictProjectSuccess(weak, weakPP, "ml_model")
		assert.Equal(t, "high", high.RiskLevel)

		low := PredictProjectSuccess(tp, pp, "api_service")
		assert.Equal(t, "low", low.RiskLevel)
	})

	t.Run("tension points name the weakness", func(t *testing.T) {
		weak := translation.TranslatedProfile{}
		weakPP := BuildPredictiveProfile(weak)
		prediction := PredictProjectSuccess(weak, weakPP, "ml_model")

		require.NotEmpty(t, prediction.TensionPoints)
		assert.Contains(t, prediction.TensionPoints[0], "Low capability match")
		assert.Contains(t, prediction.TensionPoints, "Low test coverage may impact production quality")
	})

	t.Run("skill gaps listed against project thresholds", func(t *testing.T) {
		weak := translation.TranslatedProfile{}
		weakPP := BuildPredictiveProfile(weak)
		prediction := PredictProjectSuccess(weak, weakPP, "ml_model")

		require.Len(t, prediction.SkillGaps, 2)
		assert.Contains(t, prediction.SkillGaps[0], "ai_ml")
		assert.Contains(t, prediction.SkillGaps[1], "data")
	})
}
