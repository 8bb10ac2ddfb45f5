package modeling

// Every weight, divisor, and threshold in this file is an empirically pinned
// constant carried over from model calibration; none is derived at runtime.

const modelVersion = "2.0.0"

// Skill-vector weights, one block per dimension.
const (
	backendCompositionWeight = 0.5
	backendPythonWeight      = 0.3
	backendQualityWeight     = 0.2

	frontendCompositionWeight = 0.7
	frontendLanguageWeight    = 0.3

	dataCompositionWeight = 0.5
	dataEngineeringWeight = 0.5

	// aiLibraryBonus is added when an AI-vendor client library is present.
	aiLibraryBonus = 0.2

	architectureDepthWeight    = 0.5
	architectureQualityWeight  = 0.3
	architectureScaleWeight    = 0.2
	architectureScaleDivisorKB = 2000.0
)

// Code-style constants.
const (
	typeScriptUsageDivisor = 50.0
	typingLibraryBonus     = 0.3

	// functionalLibraryThreshold is the binary toggle: strictly more
	// functional-style indicator libraries than this reads as functional.
	functionalLibraryThreshold = 2
	functionalStyleValue       = 0.3
	oopStyleValue              = 0.7

	languageDiversityDivisor = 6.0
	// minDiversityPercent is the language share (in percent) required for a
	// language to count toward diversity.
	minDiversityPercent = 1.0
)

// Friction blends: each technology's friction is 1 minus the weighted blend
// below, floor-clamped at 0.
const (
	reactFrontendWeight   = 0.4
	reactTypeSafetyWeight = 0.3
	reactComplexityWeight = 0.3

	vueFrontendWeight  = 0.6
	vueDiversityWeight = 0.4

	typescriptTypeSafetyWeight = 0.5
	typescriptFrontendWeight   = 0.3
	typescriptComplexityWeight = 0.2

	pythonTypingTypeSafetyWeight = 0.6
	pythonTypingBackendWeight    = 0.4

	mlAIWeight      = 0.4
	mlDataWeight    = 0.3
	mlBackendWeight = 0.2
	mlQualityWeight = 0.1

	devopsCloudWeight   = 0.6
	devopsBackendWeight = 0.4

	microservicesArchitectureWeight = 0.4
	microservicesBackendWeight      = 0.3
	microservicesCloudWeight        = 0.3

	fullstackFrontendWeight     = 0.4
	fullstackBackendWeight      = 0.4
	fullstackArchitectureWeight = 0.2

	mobileFrontendWeight     = 0.5
	mobileDiversityWeight    = 0.3
	mobileArchitectureWeight = 0.2
)

// Devtools-skill blend: CLI tooling, advanced-pattern usage, testing
// sophistication, and quality discipline.
const (
	devtoolsCLIWeight      = 0.35
	devtoolsAdvancedWeight = 0.25
	devtoolsTestingWeight  = 0.25
	devtoolsQualityWeight  = 0.15

	cliIndicatorDivisor      = 2.0
	advancedIndicatorDivisor = 4.0
	testingIndicatorDivisor  = 2.0
)

// Capability blends per project type.
const (
	apiBackendWeight      = 0.5
	apiArchitectureWeight = 0.3
	apiQualityWeight      = 0.2

	cliBackendWeight  = 0.4
	cliDevtoolsWeight = 0.4
	cliQualityWeight  = 0.2

	pipelineDataWeight         = 0.4
	pipelineBackendWeight      = 0.4
	pipelineArchitectureWeight = 0.2

	mlModelAIWeight      = 0.5
	mlModelDataWeight    = 0.3
	mlModelQualityWeight = 0.2

	frontendAppFrontendWeight = 0.7
	frontendAppQualityWeight  = 0.3

	fullstackAppFrontendWeight     = 0.3
	fullstackAppBackendWeight      = 0.4
	fullstackAppArchitectureWeight = 0.3

	infraCloudWeight        = 0.5
	infraBackendWeight      = 0.3
	infraArchitectureWeight = 0.2

	pluginBackendWeight      = 0.4
	pluginArchitectureWeight = 0.3
	pluginDevtoolsWeight     = 0.3
)

// skillGapThreshold: every skill-vector dimension below this is reported as a
// gap of (1 - score).
const skillGapThreshold = 0.5

// Learning-path rule thresholds.
const (
	strongBackendThreshold = 0.6
	weakFrontendThreshold  = 0.3
	strongDataThreshold    = 0.4
	weakAIThreshold        = 0.3
	weakCloudThreshold     = 0.2

	// reactOverVueFriction picks React when its friction is below this,
	// Vue otherwise.
	reactOverVueFriction = 0.6
)

// Project-success thresholds.
const (
	lowRiskThreshold    = 0.7
	mediumRiskThreshold = 0.4

	defaultSuccessScore  = 0.5
	defaultFrictionScore = 0.5

	lowCapabilityTension = 0.4
	highFrictionTension  = 0.6
	lowQualityTension    = 0.5
)

// Library indicator sets, matched case-folded against ranked library names.
var (
	aiVendorLibraries   = stringSet("openai", "anthropic", "langchain")
	typingLibraries     = stringSet("typing", "mypy", "pydantic")
	functionalLibraries = stringSet("functools", "itertools", "map", "filter", "reduce")

	cliIndicators             = stringSet("argparse", "click", "typer", "rich", "colorama")
	advancedPatternIndicators = stringSet("functools", "itertools", "collections", "heapq", "lru_cache", "cache", "deque")
	testingIndicators         = stringSet("pytest", "unittest", "mock")
)

// skillThreshold pairs a skill-vector dimension with the minimum score a
// project type expects.
type skillThreshold struct {
	Skill     string
	Threshold float64
}

// projectGapThresholds lists per-project-type expectations checked by
// PredictProjectSuccess.
var projectGapThresholds = map[string][]skillThreshold{
	"frontend_app":   {{"frontend", 0.5}, {"architecture", 0.4}},
	"fullstack_app":  {{"frontend", 0.5}, {"backend", 0.6}, {"architecture", 0.5}},
	"ml_model":       {{"ai_ml", 0.4}, {"data", 0.4}},
	"infrastructure": {{"cloud_infrastructure", 0.4}, {"backend", 0.5}},
}

func stringSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
