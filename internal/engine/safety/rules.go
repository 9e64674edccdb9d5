package safety

// Rule tables are immutable values injected into the filter, not hidden
// package state: tests can run with alternate sets via NewFilter.

// PregnancyRule is one trimester's exclusion set. Intensity caps are
// informational only; they surface as warnings, never as filters.
type PregnancyRule struct {
	Trimester        int
	ExcludeSupine    bool
	ExcludeHighImpact bool
	ExcludeProne     bool
	ExcludeKeywords  []string
	IntensityCap     string
	Advisory         string
}

// ConditionRule maps a medical-condition keyword group to exclusions and a
// mandatory warning.
type ConditionRule struct {
	Name              string
	Keywords          []string
	ExcludeKeywords   []string
	RequiresClearance bool
	Warning           string
}

// InjuryRule maps injury keywords to excluded body parts and exercise-name
// keywords.
type InjuryRule struct {
	Region            string
	Keywords          []string
	ExcludedBodyParts []string
	ExcludeKeywords   []string
}

// MedicationRule produces advisory warnings only, never exclusions.
type MedicationRule struct {
	Keywords []string
	Warning  string
}

// RuleSet bundles every safety table the filter consults.
type RuleSet struct {
	Pregnancy      map[int]PregnancyRule
	Conditions     []ConditionRule
	Injuries       []InjuryRule
	Medications    []MedicationRule
	SeniorAge      int
	SeniorAdvisory string
	BreastfeedingAdvisory string
}

// DefaultRuleSet returns the built-in rule tables.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Pregnancy:             pregnancyRules,
		Conditions:            conditionRules,
		Injuries:              injuryRules,
		Medications:           medicationRules,
		SeniorAge:             65,
		SeniorAdvisory:        "Age 65+: balance-intensive and fall-risk exercises were removed. Favor controlled, supported movements.",
		BreastfeedingAdvisory: "Breastfeeding: stay well hydrated and wear supportive clothing; intensity does not affect milk supply.",
	}
}

var pregnancyRules = map[int]PregnancyRule{
	1: {
		Trimester:       1,
		ExcludeKeywords: []string{"crunch", "sit-up", "situp", "contact", "hot yoga"},
		IntensityCap:    "Trimester 1: keep intensity conversational (able to talk through sets, roughly RPE 7 or below).",
		Advisory:        "Trimester 1: obtain medical clearance before training and stop immediately on dizziness, bleeding, or pain.",
	},
	2: {
		Trimester:         2,
		ExcludeSupine:     true,
		ExcludeProne:      true,
		ExcludeKeywords:   []string{"crunch", "sit-up", "situp", "twist", "contact"},
		IntensityCap:      "Trimester 2: avoid maximal efforts; keep heart rate comfortably below breathless.",
		Advisory:          "Trimester 2: supine and prone positions were removed; use incline or side-lying alternatives.",
	},
	3: {
		Trimester:         3,
		ExcludeSupine:     true,
		ExcludeHighImpact: true,
		ExcludeProne:      true,
		ExcludeKeywords:   []string{"jump", "burpee", "twist", "crunch", "sit-up", "situp", "contact"},
		IntensityCap:      "Trimester 3: prioritize low intensity and frequent rest; stop well short of fatigue.",
		Advisory:          "Trimester 3: supine, prone, and high-impact exercises were removed. Train only with medical clearance.",
	},
}

var conditionRules = []ConditionRule{
	{
		Name:              "heart disease",
		Keywords:          []string{"heart", "cardiac", "cardiovascular"},
		ExcludeKeywords:   []string{"sprint", "hiit", "burpee", "jump", "max effort"},
		RequiresClearance: true,
		Warning:           "Heart condition reported: high-intensity work was removed. Train only with physician clearance and monitor heart rate.",
	},
	{
		Name:            "hypertension",
		Keywords:        []string{"hypertension", "high blood pressure"},
		ExcludeKeywords: []string{"inverted", "decline", "handstand"},
		Warning:         "Hypertension reported: avoid breath-holding during lifts and keep rests generous.",
	},
	{
		Name:     "diabetes",
		Keywords: []string{"diabetes", "diabetic"},
		Warning:  "Diabetes reported: keep fast-acting carbohydrates nearby and check glucose around longer sessions.",
	},
	{
		Name:            "asthma",
		Keywords:        []string{"asthma"},
		ExcludeKeywords: []string{"sprint"},
		Warning:         "Asthma reported: warm up gradually and keep a rescue inhaler within reach.",
	},
	{
		Name:            "arthritis",
		Keywords:        []string{"arthritis", "joint pain"},
		ExcludeKeywords: []string{"jump", "plyo", "bound"},
		Warning:         "Arthritis reported: high-impact work was removed; move through pain-free ranges only.",
	},
	{
		Name:     "pcos",
		Keywords: []string{"pcos", "polycystic"},
		Warning:  "PCOS reported: a mix of resistance and moderate cardio tends to work best; recover fully between hard days.",
	},
	{
		Name:              "osteoporosis",
		Keywords:          []string{"osteoporosis", "low bone density", "osteopenia"},
		ExcludeKeywords:   []string{"jump", "twist", "crunch", "sit-up", "situp"},
		RequiresClearance: true,
		Warning:           "Osteoporosis reported: jumping and loaded spinal flexion were removed. Emphasize controlled loading.",
	},
}

var injuryRules = []InjuryRule{
	{
		Region:          "knee",
		Keywords:        []string{"knee"},
		ExcludeKeywords: []string{"squat", "lunge", "leg press", "jump", "burpee", "step up", "step-up", "pistol"},
	},
	{
		Region:            "lower back",
		Keywords:          []string{"back pain", "lower back", "lumbar", "herniat", "sciatica"},
		ExcludedBodyParts: []string{"lower back"},
		ExcludeKeywords:   []string{"deadlift", "good morning", "bent-over row", "bent over row", "superman"},
	},
	{
		Region:          "shoulder",
		Keywords:        []string{"shoulder", "rotator cuff", "impingement"},
		ExcludeKeywords: []string{"overhead press", "military press", "upright row", "behind the neck", "snatch", "handstand"},
	},
	{
		Region:          "wrist",
		Keywords:        []string{"wrist", "carpal"},
		ExcludeKeywords: []string{"push-up", "pushup", "handstand", "front squat", "clean"},
	},
	{
		Region:          "ankle",
		Keywords:        []string{"ankle", "achilles"},
		ExcludeKeywords: []string{"jump", "sprint", "run", "bound", "lunge"},
	},
	{
		Region:          "hip",
		Keywords:        []string{"hip"},
		ExcludeKeywords: []string{"squat", "deadlift", "lunge", "hip thrust"},
	},
	{
		Region:          "neck",
		Keywords:        []string{"neck", "cervical"},
		ExcludeKeywords: []string{"shrug", "behind the neck", "headstand"},
	},
	{
		Region:          "elbow",
		Keywords:        []string{"elbow", "tennis elbow", "golfer"},
		ExcludeKeywords: []string{"curl", "extension", "dip", "close-grip"},
	},
}

var medicationRules = []MedicationRule{
	{
		Keywords: []string{"beta blocker", "beta-blocker", "metoprolol", "atenolol"},
		Warning:  "Beta blockers blunt heart-rate response: gauge effort by feel (RPE), not by heart rate.",
	},
	{
		Keywords: []string{"insulin", "metformin"},
		Warning:  "Glucose-lowering medication: watch for hypoglycemia during and after training.",
	},
	{
		Keywords: []string{"blood thinner", "warfarin", "anticoagulant", "apixaban"},
		Warning:  "Anticoagulants increase bruising and bleeding risk: avoid contact and high fall-risk work.",
	},
	{
		Keywords: []string{"statin"},
		Warning:  "Statins can amplify muscle soreness: ramp volume gradually and report unusual pain.",
	},
	{
		Keywords: []string{"diuretic"},
		Warning:  "Diuretics increase dehydration risk: drink to thirst before, during, and after sessions.",
	},
}
