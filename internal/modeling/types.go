package modeling

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SkillVector holds the six normalized skill dimensions, each in [0,1].
type SkillVector struct {
	Backend             float64 `json:"backend"`
	Frontend            float64 `json:"frontend"`
	Data                float64 `json:"data"`
	AIML                float64 `json:"ai_ml"`
	CloudInfrastructure float64 `json:"cloud_infrastructure"`
	Architecture        float64 `json:"architecture"`
}

// CodeStyleProfile captures style preferences inferred from language and
// library choices, each score in [0,1]. FunctionalVsOOP reads low for
// functional leanings and high for OOP leanings.
type CodeStyleProfile struct {
	TypeSafetyPreference float64 `json:"type_safety_preference"`
	FunctionalVsOOP      float64 `json:"functional_vs_oop"`
	LanguageDiversity    float64 `json:"language_diversity"`
	ComplexityTolerance  float64 `json:"complexity_tolerance"`
}

// FrictionProfile scores how hard each technology would be to adopt; lower
// means easier. All scores are floor-clamped at 0.
type FrictionProfile struct {
	ReactFriction         float64 `json:"react_friction"`
	VueFriction           float64 `json:"vue_friction"`
	TypeScriptFriction    float64 `json:"typescript_friction"`
	PythonTypingFriction  float64 `json:"python_typing_friction"`
	MLProjectFriction     float64 `json:"ml_project_friction"`
	DevOpsFriction        float64 `json:"devops_friction"`
	MicroservicesFriction float64 `json:"microservices_friction"`
	FullstackFriction     float64 `json:"fullstack_friction"`
	MobileFriction        float64 `json:"mobile_friction"`
}

// CapabilityAssessment scores success likelihood per project type, each in
// [0,1].
type CapabilityAssessment struct {
	APIService     float64 `json:"api_service"`
	CLITool        float64 `json:"cli_tool"`
	DataPipeline   float64 `json:"data_pipeline"`
	MLModel        float64 `json:"ml_model"`
	FrontendApp    float64 `json:"frontend_app"`
	FullstackApp   float64 `json:"fullstack_app"`
	Infrastructure float64 `json:"infrastructure"`
	PluginSystem   float64 `json:"plugin_system"`
}

// Recommendation is one learning-path suggestion.
type Recommendation struct {
	Area              string   `json:"area"`
	Priority          string   `json:"priority"`
	Friction          float64  `json:"friction"`
	Rationale         string   `json:"rationale"`
	SuggestedTech     []string `json:"suggested_tech"`
	EstimatedFriction float64  `json:"estimated_friction"`
}

// ModelMetadata carries model provenance. AnalysisTimestamp is copied from
// the translated profile and stays excluded from equality checks.
type ModelMetadata struct {
	ModelVersion      string `json:"model_version"`
	BasedOnRepos      int    `json:"based_on_repos"`
	DataSource        string `json:"data_source"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
}

// PredictiveProfile is the terminal artifact of the pipeline.
type PredictiveProfile struct {
	SkillVector             SkillVector          `json:"skill_vector"`
	CodeStyleProfile        CodeStyleProfile     `json:"code_style_profile"`
	FrictionProfile         FrictionProfile      `json:"friction_profile"`
	CapabilityAssessment    CapabilityAssessment `json:"capability_assessment"`
	SkillGaps               RankedScores         `json:"skill_gaps"`
	LearningRecommendations []Recommendation     `json:"learning_recommendations"`
	DevtoolsSkill           float64              `json:"devtools_skill"`
	Metadata                ModelMetadata        `json:"metadata"`
}

// ProjectPrediction is the per-project-type success assessment.
type ProjectPrediction struct {
	ProjectType       string   `json:"project_type"`
	SuccessLikelihood float64  `json:"success_likelihood"`
	FrictionScore     float64  `json:"friction_score"`
	RiskLevel         string   `json:"risk_level"`
	TensionPoints     []string `json:"tension_points"`
	SkillGaps         []string `json:"skill_gaps"`
}

// ScoreEntry is one name/score pair in a RankedScores mapping.
type ScoreEntry struct {
	Name  string
	Score float64
}

// RankedScores is a score mapping ordered by descending score. Like
// analysis.RankedCounts it marshals as a JSON object in rank order.
type RankedScores []ScoreEntry

// Get returns the score for name, or 0 when absent.
func (rs RankedScores) Get(name string) float64 {
	for _, e := range rs {
		if e.Name == name {
			return e.Score
		}
	}
	return 0
}

// MarshalJSON encodes the mapping as a JSON object in rank order.
func (rs RankedScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range rs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(e.Score, 'g', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving its key order.
func (rs *RankedScores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ranked scores: expected JSON object, got %v", tok)
	}
	out := RankedScores{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ranked scores: expected string key, got %v", keyTok)
		}
		var score float64
		if err := dec.Decode(&score); err != nil {
			return err
		}
		out = append(out, ScoreEntry{Name: name, Score: score})
	}
	*rs = out
	return nil
}
