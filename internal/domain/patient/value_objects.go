package patient

// Value Objects - Immutable objects that describe aspects of the domain

// DiabetesStatus is the patient's reported diabetes diagnosis
type DiabetesStatus string

const (
	DiabetesNone        DiabetesStatus = "none"
	DiabetesType1       DiabetesStatus = "type1"
	DiabetesType2       DiabetesStatus = "type2"
	DiabetesPrediabetes DiabetesStatus = "prediabetes"
)

// Valid reports whether the status is one of the known values
func (s DiabetesStatus) Valid() bool {
	switch s {
	case DiabetesNone, DiabetesType1, DiabetesType2, DiabetesPrediabetes:
		return true
	}
	return false
}

// IsDiabetic reports whether the status is a full diabetes diagnosis
func (s DiabetesStatus) IsDiabetic() bool {
	return s == DiabetesType1 || s == DiabetesType2
}

// HealthCategory is the overall risk category derived from the risk tally
type HealthCategory string

const (
	LowRisk      HealthCategory = "low_risk"
	ModerateRisk HealthCategory = "moderate_risk"
	HighRisk     HealthCategory = "high_risk"
)

// RiskFactor is a single boolean contribution to the risk tally
type RiskFactor string

const (
	RiskObesity            RiskFactor = "obesity"
	RiskOverweight         RiskFactor = "overweight"
	RiskHighBloodSugar     RiskFactor = "high_blood_sugar"
	RiskElevatedBloodSugar RiskFactor = "elevated_blood_sugar"
	RiskHypertension       RiskFactor = "hypertension"
	RiskElevatedBP         RiskFactor = "elevated_bp"
	RiskDiabetes           RiskFactor = "diabetes"
	RiskPrediabetes        RiskFactor = "prediabetes"
)

// BMIBand is the conventional BMI classification used in report summaries
type BMIBand string

const (
	BMIUnderweight BMIBand = "Underweight"
	BMINormal      BMIBand = "Normal"
	BMIOverweight  BMIBand = "Overweight"
	BMIObese       BMIBand = "Obese"
)

// BloodPressure is a single systolic/diastolic reading in mmHg
type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// DietaryRestrictions are the rule-derived constraints fed to the
// recommendation engine. All fields default to false.
type DietaryRestrictions struct {
	LimitSugar        bool `json:"limit_sugar"`
	LimitSodium       bool `json:"limit_sodium"`
	PortionControl    bool `json:"portion_control"`
	IncreaseFiber     bool `json:"increase_fiber"`
	LimitSaturatedFat bool `json:"limit_saturated_fat"`
}

// Vitals are the raw patient measurements supplied per request
type Vitals struct {
	Age            int
	WeightKg       float64
	HeightM        float64
	BloodSugar     float64 // mg/dL
	BloodPressure  BloodPressure
	DiabetesStatus DiabetesStatus
	Location       string
}
